package sdk

// User is a console account: an administrator or an agent.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	InviteCode string `json:"invite_code,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// FryRecord is a captured record row as the dashboard endpoints return it.
// The session layer treats it as an opaque data contract.
type FryRecord struct {
	ID         int64  `json:"id"`
	Phone      string `json:"phone"`
	URL        string `json:"url"`
	InviteCode string `json:"invite_code,omitempty"`
	StateID    string `json:"state_id"`
	Remark     string `json:"remark,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// LoginResult is the outcome of a successful login call.
type LoginResult struct {
	Token string
	User  User
}

// ListFryRecordsInput are the dashboard search parameters. Zero-value
// filters are omitted from the query.
type ListFryRecordsInput struct {
	Page     int
	PageSize int
	Date     string
	Phone    string
	Agent    string
}

// FryRecordPage is one page of fry records plus the total match count.
type FryRecordPage struct {
	Records []FryRecord
	Total   int
}

// ListAgentsInput are the agent search parameters.
type ListAgentsInput struct {
	Page     int
	PageSize int
	Username string
}

// AgentPage is one page of agents plus the total match count.
type AgentPage struct {
	Agents []User
	Total  int
}
