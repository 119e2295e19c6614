package sealbox

import "github.com/awnumar/memguard"

// wipe overwrites secret material in place
func wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}

// passphraseBytes copies a passphrase into a buffer the caller must wipe
func passphraseBytes(passphrase string) []byte {
	if passphrase == "" {
		return nil
	}
	buf := make([]byte, len(passphrase))
	copy(buf, passphrase)
	return buf
}
