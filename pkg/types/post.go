package types

// DateFormat is the layout of Post.Date, a bare calendar date.
const DateFormat = "2006-01-02"

type Post struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

func (p Post) Equal(other Post) bool {
	return p.ID == other.ID &&
		p.Title == other.Title &&
		p.Content == other.Content &&
		p.Author == other.Author &&
		p.Date == other.Date
}
