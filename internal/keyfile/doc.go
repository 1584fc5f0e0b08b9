// Package keyfile encodes and decodes the two on-disk file formats that
// hold key material: the 64-byte secret-key file (optionally
// passphrase-wrapped) and the 32-byte public-key file. It is grounded on
// the same open-decode-and-validate shape as the teacher's RSA key codec,
// adapted to the fixed-width binary format this system requires instead of
// PEM/PKCS.
package keyfile
