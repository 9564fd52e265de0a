package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/wexinc/gatekeep/internal/gates"
	"github.com/wexinc/gatekeep/internal/tui/styles"
)

var separator = strings.Repeat("=", 50)

// WriteSection writes a section banner followed by its numbered gates.
func WriteSection(w io.Writer, sec *gates.Section) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.HeadingStyle.Render(separator))
	fmt.Fprintln(w, styles.HeadingStyle.Render("Feature gates for: "+sec.Name))
	fmt.Fprintln(w, styles.HeadingStyle.Render(separator))
	if sec.Len() == 0 {
		fmt.Fprintln(w, styles.WarningTextStyle.Render("No feature gates available in this section."))
		return
	}
	for i, f := range sec.Flags() {
		fmt.Fprintf(w, "%d. %s: %s\n", i+1, f.Name, styles.Value(f.Value))
	}
}

// WriteStore writes every section in file order.
func WriteStore(w io.Writer, st *gates.Store) {
	for _, sec := range st.Sections() {
		WriteSection(w, sec)
	}
}
