// Package api describes the wire contract of the EasyFinance service:
// the record shapes the service returns and the request templates for
// each operation. JSON tags mirror the service's field names exactly,
// mixed casing and abbreviations included, because the wire format is
// fixed on the remote side.
package api

// ErrorType is the error object embedded in every response envelope.
// Code 0 is the service's success sentinel; it is unrelated to the
// HTTP status of the response that carried it.
type ErrorType struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AuthResult is the envelope returned by the TokenPassword operation.
// RefreshToken is issued by the service but no refresh flow exists; it
// is received and dropped.
type AuthResult struct {
	Error        ErrorType `json:"Error"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// AccountCurrencyInfo is one currency balance attached to an account.
type AccountCurrencyInfo struct {
	ID        int     `json:"Id"`
	ShortName string  `json:"ShortName"`
	Rate      float64 `json:"Rate"`
	Balance   float64 `json:"Balance"`
	Display   bool    `json:"Display"`
}

// Account belongs to exactly one group within a response.
type Account struct {
	ID                string                `json:"Id"`
	Name              string                `json:"Name"`
	IsDefault         bool                  `json:"IsDefault"`
	Display           bool                  `json:"Display"`
	IncludeBalance    bool                  `json:"IncludeBalance"`
	HasOpenCurrencies bool                  `json:"HasOpenCurrencies"`
	Currencies        []AccountCurrencyInfo `json:"ListCurrencyInfo"`
	// The service names this isShowInGroup (lowercase i, unlike its
	// siblings) although it semantically marks deleted accounts.
	IsShowInGroup bool `json:"isShowInGroup"`
}

// AccountGroup is a response-scoped grouping of accounts. Ordering
// among groups is the caller's business via Order.
type AccountGroup struct {
	ID              int       `json:"Id"`
	Name            string    `json:"Name"`
	HasAccounts     bool      `json:"HasAccounts"`
	HasShowAccounts bool      `json:"HasShowAccounts"`
	Order           int       `json:"Order"`
	Accounts        []Account `json:"ListAccountInfo"`
}

// CategoryType distinguishes expense from income categories.
type CategoryType int

const (
	CategoryExpense CategoryType = 0
	CategoryIncome  CategoryType = 1
)

type Category struct {
	ID        string       `json:"Id"`
	Type      CategoryType `json:"Type"`
	Name      string       `json:"Name"`
	FullName  string       `json:"FullName"`
	IsArchive bool         `json:"IsArchive"`
	IsPinned  bool         `json:"IsPinned"`
}

// Transaction is one ledger entry. Total may be zero or negative
// (refunds); no magnitude validation happens client-side. Date is the
// service's "YYYY-MM-DDTHH:MM:SS" string and is passed through as-is.
type Transaction struct {
	ID               string  `json:"Id"`
	Date             string  `json:"Date"`
	DateUnix         string  `json:"DateUnix"`
	CategoryID       int     `json:"CategoryId"`
	CategoryFullName string  `json:"CategoryFullName"`
	Description      string  `json:"Description"`
	IsPlan           bool    `json:"IsPlan"`
	Type             int     `json:"Type"`
	Total            float64 `json:"Total"`
	AccountID        string  `json:"AccountId"`
	CurrencyID       int     `json:"CurrencyId"`
	TransTotal       float64 `json:"TransTotal"`
	TransAccountID   string  `json:"TransAccountId"`
	TransCurrencyID  int     `json:"TransCurrencyId"`
	// The service stores the free-form comment under GUID.
	Comment        string `json:"GUID"`
	CreateDate     string `json:"CreateDate"`
	CreateDateUnix string `json:"CreateDateUnix"`
}

// BalanceEnvelope is the BalanceList response.
type BalanceEnvelope struct {
	DefaultCurrencyID int            `json:"DefaultCurrencyId"`
	CurrencyShortName string         `json:"CurrencyShortName"`
	Groups            []AccountGroup `json:"ListGroupInfo"`
	Error             ErrorType      `json:"Error"`
}

// CategoryEnvelope is the CategoryList response.
type CategoryEnvelope struct {
	Categories []Category `json:"ListCategory"`
	Error      ErrorType  `json:"Error"`
}

// TransactionEnvelope is the TransactionList response.
type TransactionEnvelope struct {
	Transactions []Transaction `json:"ListTransaction"`
	Error        ErrorType     `json:"Error"`
}
