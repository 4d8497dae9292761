package menace

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/awalterschulze/gographviz"
	"github.com/gorgonia/menace/game/mnk"
	"github.com/pkg/errors"
)

type dotNode struct {
	ID       int
	Beads    int
	Terminal bool
	board    *mnk.Board
}

func (n dotNode) State() string {
	var buf bytes.Buffer
	for i, c := range n.board.Board() {
		if i%mnk.N == 0 {
			fmt.Fprint(&buf, "⎢ ")
		}
		fmt.Fprintf(&buf, "%s ", c)
		if (i+1)%mnk.N == 0 {
			fmt.Fprint(&buf, "⎥<BR />")
		}
	}
	return buf.String()
}

// ToDot renders the store as a Graphviz graph: a node per matchbox, an edge per move.
func (s *Store) ToDot() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName("G"); err != nil {
		return "", errors.WithStack(err)
	}
	if err := g.SetDir(true); err != nil {
		return "", errors.WithStack(err)
	}

	var buf bytes.Buffer
	for id := range s.entries {
		n := dotNode{
			ID:       id,
			Beads:    s.entries[id].box.Total(),
			Terminal: s.entries[id].terminal,
			board:    s.Board(id),
		}
		buf.Reset()
		if err := tmpl.Execute(&buf, n); err != nil {
			return "", errors.WithStack(err)
		}
		attrs := map[string]string{
			"fontname": "Monaco",
			"shape":    "none",
			"label":    buf.String(),
		}
		if err := g.AddNode("G", strconv.Itoa(id), attrs); err != nil {
			return "", errors.WithStack(err)
		}
	}
	for id := range s.entries {
		for _, kid := range s.entries[id].children {
			if err := g.AddEdge(strconv.Itoa(id), strconv.Itoa(kid), true, nil); err != nil {
				return "", errors.WithStack(err)
			}
		}
	}
	return g.String(), nil
}

const tmplRaw = `<
<TABLE BORDER="0" CELLBORDER="1" CELLSPACING="0">
<TR><TD>Matchbox</TD><TD>{{.ID}}</TD></TR>
<TR><TD>Beads</TD><TD>{{.Beads}}</TD></TR>
<TR><TD>Terminal</TD><TD>{{.Terminal}}</TD></TR>
<TR><TD>State</TD><TD>{{.State}}</TD></TR>
</TABLE>
>
`

var tmpl *template.Template

func init() {
	tmpl = template.Must(template.New("name").Parse(tmplRaw))
}
