package dto

type UpdateSettingsRequest struct {
	StorageRoot   *string  `json:"storage_root"`
	BrandLogoPath *string  `json:"brand_logo_path"`
	Currency      *string  `json:"currency"    validate:"omitempty,oneof=ZAR USD EUR GBP"`
	VATPercent    *float64 `json:"vat_percent" validate:"omitempty,min=0,max=100"`
}

type SettingsResponse struct {
	StorageRoot   string  `json:"storage_root"`
	BrandLogoPath string  `json:"brand_logo_path,omitempty"`
	Currency      string  `json:"currency"`
	VATPercent    float64 `json:"vat_percent"`
}

type BackupResponse struct {
	ArchivePath string `json:"archive_path"`
}
