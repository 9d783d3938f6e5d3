package mdmath_test

import (
	"context"
	"fmt"

	mdmath "github.com/alnah/go-mdmath"
)

// Example demonstrates rewriting inline mathematics.
func Example() {
	tr, err := mdmath.NewTransformer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	out := tr.Transform(context.Background(), "Pythagorean theorem: $a^{2} + b^{2} = c^{2}$")
	fmt.Println(out)
	// Output: Pythagorean theorem: <span class="inline math">$a^{2} + b^{2} = c^{2}$</span>
}

// Example_book demonstrates preprocessing a multi-chapter book.
func Example_book() {
	tr, err := mdmath.NewTransformer()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	book := &mdmath.Book{}
	book.AddChapter("Identities", "Euler's identity: $$e^{i\\pi} + 1 = 0$$", "identities.md")

	pre := mdmath.NewMathPreprocessor(tr)
	if err := pre.Run(context.Background(), book); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(book.Chapters[0].Content)
	// Output: Euler's identity: <div class="math">$$e^{i\pi} + 1 = 0$$</div>
}
