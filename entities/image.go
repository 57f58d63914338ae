package entities

// ImageAsset is a processed progress photo stored out-of-line from its
// entry. Full and Thumbnail are data URLs (base64 JPEG).
type ImageAsset struct {
	Full         string `json:"full"`
	Thumbnail    string `json:"thumbnail"`
	OriginalName string `json:"originalName"`
}
