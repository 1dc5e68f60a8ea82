package serpapi

// ImageResult is a single entry of the images_results list.
type ImageResult struct {
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail"`
	Title     string `json:"title"`
	Source    string `json:"source"`
}

// URL returns the best available image URL: original, falling back to thumbnail.
func (r ImageResult) URL() string {
	if r.Original != "" {
		return r.Original
	}
	return r.Thumbnail
}

type searchResponse struct {
	ImagesResults []ImageResult `json:"images_results"`
}
