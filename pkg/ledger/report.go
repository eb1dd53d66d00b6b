package ledger

// Row is one line of the current-ledger report: an account's identity and its
// balance as of the call.
type Row struct {
	AccountNumber string `json:"account_number"`
	Owner         string `json:"owner"`
	Balance       int64  `json:"balance"`
}

// TotalCapital sums the balances of every registered account. Because every
// balance equals the sum of its history amounts, this also equals the sum of
// all amounts ever applied, and a transfer never changes it.
func (s *Service) TotalCapital() int64 {
	var total int64
	for _, a := range s.dir.ListAccounts() {
		total += a.Balance
	}
	return total
}

// CurrentLedger returns one row per registered account, ordered by account
// number. The report is recomputed on every call and never cached.
func (s *Service) CurrentLedger() []Row {
	accounts := s.dir.ListAccounts()
	rows := make([]Row, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, Row{
			AccountNumber: a.Number,
			Owner:         a.OwnerName,
			Balance:       a.Balance,
		})
	}
	return rows
}
