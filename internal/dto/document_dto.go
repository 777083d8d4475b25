package dto

// DocumentResponse is one row of a purchase's version ledger. Saving is a
// multipart form (doc_type plus a file part or pasted_text), so there is no
// JSON request counterpart.
type DocumentResponse struct {
	ID         string `json:"id"`
	PurchaseID string `json:"purchase_id"`
	DocType    string `json:"doc_type"`
	Filename   string `json:"filename"`
	SavedPath  string `json:"saved_path"`
	Version    int    `json:"version"`
	Current    bool   `json:"current"`
	UploadedAt string `json:"uploaded_at"`
}
