package account

// Party names one side of a transfer either by an account handle or by a
// lookup key (an account number, with or without the fixed prefix). It is a
// tagged variant: exactly one of the two forms is set, and the directory
// resolves the key form before any validation.
type Party struct {
	acct *Account
	key  string
}

// PartyOf references an account directly by handle.
func PartyOf(a *Account) Party {
	return Party{acct: a}
}

// PartyKey references an account by a lookup key to be resolved through the
// directory's number index.
func PartyKey(key string) Party {
	return Party{key: key}
}

// Account returns the referenced handle, if the party was built with PartyOf.
func (p Party) Account() (*Account, bool) {
	return p.acct, p.acct != nil
}

// Key returns the lookup key, if the party was built with PartyKey.
func (p Party) Key() string {
	return p.key
}
