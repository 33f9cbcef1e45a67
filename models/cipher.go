package models

// CipherRequest is the body of the encrypt/decrypt endpoints.
type CipherRequest struct {
	Text string `json:"text"`
	Key  string `json:"key"`
}

// CipherResponse carries the transformed text.
type CipherResponse struct {
	Text string `json:"text"`
}
