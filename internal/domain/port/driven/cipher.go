package driven

// Cipher defines the driven port for the symmetric cipher primitive. Key
// material is bound at construction time; every call in a process lifetime
// uses the same key. The contract requires Decrypt(Encrypt(x)) == x and that
// decryption under a different key reliably fails rather than returning a
// silently wrong plaintext.
type Cipher interface {
	// Encrypt returns an opaque ciphertext string for plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Malformed or tampered ciphertext, and
	// ciphertext produced under a different key, must return an error.
	Decrypt(ciphertext string) (string, error)
}
