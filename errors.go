package aadissuer

import "errors"

// ErrArgumentMissing indicates a required input (issuer, token, config,
// authority) was nil or empty.
var ErrArgumentMissing = errors.New("aadissuer: required argument missing")

// ErrInvalidIssuer indicates the claimed issuer could not be validated: no
// tenant id was determinable, the issuer uses an unsupported shape, or no
// configured template or discovery-derived issuer matched. Discovery
// failures are wrapped under this sentinel with the underlying cause kept in
// the chain.
var ErrInvalidIssuer = errors.New("aadissuer: invalid issuer")
