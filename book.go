package mdmath

// Book is a tree of markdown chapters, the unit a Preprocessor operates on.
// The zero value is an empty book ready for use.
type Book struct {
	Chapters []*Chapter
}

// Chapter is one section of a book. Content holds raw markdown; Path is the
// source location relative to the book root, informational only.
type Chapter struct {
	Name        string
	Content     string
	Path        string
	SubChapters []*Chapter
}

// AddChapter appends a top-level chapter and returns it.
func (b *Book) AddChapter(name, content, path string) *Chapter {
	ch := &Chapter{Name: name, Content: content, Path: path}
	b.Chapters = append(b.Chapters, ch)
	return ch
}

// ForEachChapter visits every chapter depth-first in reading order,
// sub-chapters immediately after their parent.
func (b *Book) ForEachChapter(visit func(*Chapter)) {
	for _, ch := range b.Chapters {
		walkChapter(ch, visit)
	}
}

func walkChapter(ch *Chapter, visit func(*Chapter)) {
	visit(ch)
	for _, sub := range ch.SubChapters {
		walkChapter(sub, visit)
	}
}
