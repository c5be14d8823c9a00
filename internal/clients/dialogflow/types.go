package dialogflow

// QueryRequest is the body of a text query.
type QueryRequest struct {
	Query     string `json:"query"`
	Lang      string `json:"lang"`
	SessionID string `json:"sessionId"`
}

// QueryResponse is the subset of the query response the relay reads.
type QueryResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Result    Result `json:"result"`
	Status    Status `json:"status"`
}

// Result holds the matched intent outcome.
type Result struct {
	ResolvedQuery string      `json:"resolvedQuery"`
	Action        string      `json:"action"`
	Score         float64     `json:"score"`
	Fulfillment   Fulfillment `json:"fulfillment"`
}

// Fulfillment is the reply produced for the matched intent.
type Fulfillment struct {
	Speech string `json:"speech"`
}

// Status reports the outcome of the query on the Dialogflow side.
type Status struct {
	Code         int    `json:"code"`
	ErrorType    string `json:"errorType"`
	ErrorDetails string `json:"errorDetails"`
}
