package response

type MetadataItem struct {
	Title  string `json:"title"`
	Year   string `json:"year"`
	IMDbID string `json:"imdb_id"`
	Type   string `json:"type"`
	Poster string `json:"poster"`
}

type MetadataSearchResponse struct {
	Items []MetadataItem `json:"items"`
}
