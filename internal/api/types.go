package api

// --- Auth ---

// Credentials is the body of /auth/register and /auth/login.
type Credentials struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// RegisterResponse is returned by /auth/register.
type RegisterResponse struct {
	OK      bool `json:"ok"`
	IsAdmin bool `json:"is_admin"`
}

// LoginResponse is returned by /auth/login. Email is nil until KYC is submitted.
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	UserID      string  `json:"user_id"`
	IsAdmin     bool    `json:"is_admin"`
	KYCStatus   string  `json:"kyc_status"`
	Email       *string `json:"email"`
}

// --- KYC ---

// KYCInput is the body of /kyc/submit.
type KYCInput struct {
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"email"`
	Country    string `json:"country,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
}

// KYCResponse is returned by /kyc/submit.
type KYCResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
	Email  string `json:"email"`
}

// --- Wallet ---

// Balance is one asset's balance. Amounts are decimal strings.
type Balance struct {
	Total     string `json:"total"`
	Available string `json:"available"`
	Locked    string `json:"locked"`
}

// Balances is returned by /wallet/balances/{uid}.
type Balances struct {
	UserID    string             `json:"user_id"`
	KYCStatus string             `json:"kyc_status"`
	Email     *string            `json:"email"`
	Balances  map[string]Balance `json:"balances"`
}
