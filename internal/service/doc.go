// Package service holds the business rules that sit between the HTTP
// handlers and the stores: command validation, uniqueness checks,
// temporal edit rules, credential verification, and the transaction
// boundaries around every mutation.
package service
