package api

import "strconv"

// Param is one query parameter. Order is preserved on the wire.
type Param struct {
	Name  string
	Value string
}

// Request is the shape of one service call: a path segment appended to
// the service URI plus its ordered query parameters. Requests carry no
// interpretation of the response; decoding belongs to the transport and
// envelope validity to the client.
type Request struct {
	Path   string
	Params []Param
}

const grantTypePassword = "password"

// Authenticate is the TokenPassword request. grant_type is always
// present and fixed to "password".
func Authenticate(username, password, clientID, clientSecret string) Request {
	return Request{
		Path: "TokenPassword",
		Params: []Param{
			{Name: "username", Value: username},
			{Name: "password", Value: password},
			{Name: "client_id", Value: clientID},
			{Name: "client_secret", Value: clientSecret},
			{Name: "grant_type", Value: grantTypePassword},
		},
	}
}

// BalanceList lists account groups for the session token.
func BalanceList(token string) Request {
	return Request{
		Path:   "BalanceList",
		Params: []Param{{Name: "Token", Value: token}},
	}
}

// CategoryList lists categories for the session token.
func CategoryList(token string) Request {
	return Request{
		Path:   "CategoryList",
		Params: []Param{{Name: "Token", Value: token}},
	}
}

// TransactionList lists transactions for the session token. A nil
// topCount leaves TopCount off the query string entirely; any non-nil
// value goes through verbatim, zero and negatives included, since the
// range semantics are the server's.
func TransactionList(token string, topCount *int) Request {
	r := Request{
		Path:   "TransactionList",
		Params: []Param{{Name: "Token", Value: token}},
	}
	if topCount != nil {
		r.Params = append(r.Params, Param{Name: "TopCount", Value: strconv.Itoa(*topCount)})
	}
	return r
}
