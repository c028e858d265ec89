package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/javanhut/codenav/internal/colors"
	"github.com/javanhut/codenav/internal/seals"
	"github.com/javanhut/codenav/internal/versions"
)

// renderOptions controls optional parts of the output.
type renderOptions struct {
	names bool
}

// versionNumber is the 1-based number shown to users for a node.
func versionNumber(id versions.NodeID) int {
	return int(id) + 1
}

func versionLabel(n versions.Node, opts renderOptions) string {
	if opts.names {
		return seals.Generate(n.Fingerprint)
	}
	return "#" + strconv.Itoa(versionNumber(n.ID))
}

// renderView draws the current version, the navigation controls and the
// draft form.
func renderView(w io.Writer, v versions.View, opts renderOptions) {
	cur := v.Current

	fmt.Fprintf(w, "%s Code Version Navigator %s\n\n",
		colors.Bold("⌘"),
		colors.Dim(fmt.Sprintf("(version %d of %d)", versionNumber(cur.ID), v.Total)))

	renderNode(w, cur, opts)

	fmt.Fprintf(w, "\n  %s   %s   %s\n\n",
		colors.Control("← Previous", v.HasPrevious),
		colors.Control("Reset", true),
		colors.Control("Next →", v.HasNext))

	renderDraft(w, v.Pending)
}

// renderNode draws one version: header, name and code block.
func renderNode(w io.Writer, n versions.Node, opts renderOptions) {
	fmt.Fprintf(w, "  %s  %s\n", colors.Bold(n.Description), colors.Gray(n.CreatedAt))
	fmt.Fprintf(w, "  %s %s\n", colors.LanguageBadge(string(n.Language), n.Language.Label()), colors.Cyan(versionLabel(n, opts)))
	fmt.Fprintln(w, colors.Dim("  ────────────────────────────────────────"))
	for _, line := range strings.Split(n.Code, "\n") {
		fmt.Fprintf(w, "  │ %s\n", line)
	}
	fmt.Fprintln(w, colors.Dim("  ────────────────────────────────────────"))
}

// renderDraft draws the pending fields of the input form.
func renderDraft(w io.Writer, d versions.Draft) {
	fmt.Fprintln(w, colors.SectionHeader("New version"))
	fmt.Fprintf(w, "  Language:    %s\n", colors.LanguageBadge(string(d.Language), d.Language.Label()))

	lines := 0
	if d.Code != "" {
		lines = strings.Count(d.Code, "\n") + 1
	}
	fmt.Fprintf(w, "  Code:        %s\n", colors.Gray(fmt.Sprintf("%d line(s), %d byte(s)", lines, len(d.Code))))

	if d.Description == "" {
		fmt.Fprintf(w, "  Description: %s\n", colors.Gray("(optional, defaults to the save time)"))
	} else {
		fmt.Fprintf(w, "  Description: %s\n", d.Description)
	}
}

// renderStatus prints a one-line summary after a navigation intent.
func renderStatus(w io.Writer, v versions.View, opts renderOptions) {
	cur := v.Current
	fmt.Fprintf(w, "%s version %d of %d: %s %s\n",
		colors.CurrentMarker(),
		versionNumber(cur.ID), v.Total,
		colors.Bold(cur.Description),
		colors.Gray("("+versionLabel(cur, opts)+")"))
}

// renderLog lists every version ever created, oldest first. The version on
// display is marked, and so are versions detached by a later save.
func renderLog(w io.Writer, chain *versions.Chain, current versions.NodeID, oneline bool, opts renderOptions) {
	detached := chain.Detached()

	fmt.Fprintf(w, "%s %d version(s):\n\n", colors.Bold("⏱"), chain.Len())
	for _, n := range chain.All() {
		prefix := "  "
		if n.ID == current {
			prefix = colors.CurrentMarker()
		}

		var tags []string
		if n.ID == current {
			tags = append(tags, colors.Green("current"))
		}
		if detached[n.ID] {
			tags = append(tags, colors.DetachedMarker())
		}
		tagText := ""
		if len(tags) > 0 {
			tagText = " (" + strings.Join(tags, ", ") + ")"
		}

		if oneline {
			fmt.Fprintf(w, "%s%d. %s %s %s%s\n",
				prefix, versionNumber(n.ID),
				colors.Gray(seals.ShortHash(n.Fingerprint)),
				colors.LanguageBadge(string(n.Language), n.Language.Label()),
				n.Description, tagText)
			continue
		}

		fmt.Fprintf(w, "%s%d. %s%s\n", prefix, versionNumber(n.ID), colors.Cyan(versionLabel(n, opts)), tagText)
		fmt.Fprintf(w, "     %s %s\n", colors.LanguageBadge(string(n.Language), n.Language.Label()), n.Description)
		fmt.Fprintf(w, "     %s\n", colors.Gray(n.CreatedAt))
		if n.HasPrevious() {
			fmt.Fprintf(w, "     %s\n", colors.Dim(fmt.Sprintf("after #%d", versionNumber(n.PrevID))))
		}
	}
}

// renderLanguages prints the supported language set.
func renderLanguages(w io.Writer) {
	for _, lang := range versions.Languages() {
		fmt.Fprintf(w, "  %-12s %s\n", string(lang), colors.LanguageBadge(string(lang), lang.Label()))
	}
}

// findVersion resolves a version number ("3", "#3"), a generated name or a
// fingerprint prefix to a node. A bare number that names no version is
// retried as a hash prefix, since short hashes can be all digits.
func findVersion(chain *versions.Chain, query string) (versions.Node, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return versions.Node{}, fmt.Errorf("missing version: give a number, name or hash")
	}

	if digits, ok := strings.CutPrefix(query, "#"); ok {
		num, err := strconv.Atoi(digits)
		if err != nil {
			return versions.Node{}, fmt.Errorf("invalid version number %q", query)
		}
		return versionByNumber(chain, num)
	}

	num, numErr := strconv.Atoi(query)
	if numErr == nil {
		if n, err := versionByNumber(chain, num); err == nil {
			return n, nil
		}
	}

	var found []versions.Node
	for _, n := range chain.All() {
		if seals.Matches(query, n.Fingerprint) {
			found = append(found, n)
		}
	}
	switch len(found) {
	case 0:
		if numErr == nil {
			return versionByNumber(chain, num)
		}
		return versions.Node{}, fmt.Errorf("no version matches %q", query)
	case 1:
		return found[0], nil
	default:
		return versions.Node{}, fmt.Errorf("%q is ambiguous: matches %d versions", query, len(found))
	}
}

func versionByNumber(chain *versions.Chain, num int) (versions.Node, error) {
	if n, ok := chain.Get(versions.NodeID(num - 1)); ok {
		return n, nil
	}
	return versions.Node{}, fmt.Errorf("no version #%d (have %d)", num, chain.Len())
}
