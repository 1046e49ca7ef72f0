package dto

// AdminError is the plain error body of the admin API.
type AdminError struct {
	Error string `json:"error"`
}

// AdminAck confirms an admin mutation.
type AdminAck struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// UploadImageRequest carries a base64 image upload.
type UploadImageRequest struct {
	ImageData string `json:"imageData"`
	FileName  string `json:"fileName"`
}

// UploadImageResponse returns the stored image reference.
type UploadImageResponse struct {
	Success bool   `json:"success"`
	ImageID string `json:"imageId"`
	URL     string `json:"url"`
}
