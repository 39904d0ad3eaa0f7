package goquery

import (
	"strconv"

	"github.com/andybalholm/cascadia"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// dataTableSignals are descendants that only appear in tabular data.
var dataTableSignals = cascadia.MustCompile("col, colgroup, tfoot, thead, th")

// IsDataTable reports whether a table holds tabular data rather than
// layout. Presentation roles and datatable="0" mark layout; summaries,
// captions, header cells and column groups mark data. Otherwise a table
// with at least two rows of at least two cells is data, and single row or
// single column tables are layout.
func IsDataTable(table *html.Node) bool {
	if dom.GetAttribute(table, "role") == "presentation" {
		return false
	}
	if dom.GetAttribute(table, "datatable") == "0" {
		return false
	}
	if dom.GetAttribute(table, "summary") != "" {
		return true
	}
	if caption := findFirst(table, "caption"); caption != nil && caption.FirstChild != nil {
		return true
	}
	if cascadia.Query(table, dataTableSignals) != nil {
		return true
	}
	if findFirst(table, "table") != nil {
		return false
	}
	rows, columns := tableSize(table)
	return rows > 1 && columns > 1
}

// tableSize counts rows and the widest row, honoring colspan and rowspan.
func tableSize(table *html.Node) (rows, columns int) {
	for _, tr := range elements(table, "tr") {
		rowspan, _ := strconv.Atoi(dom.GetAttribute(tr, "rowspan"))
		rows += max(1, rowspan)

		width := 0
		for _, cell := range dom.Children(tr) {
			if cell.Data != "td" && cell.Data != "th" {
				continue
			}
			colspan, _ := strconv.Atoi(dom.GetAttribute(cell, "colspan"))
			width += max(1, colspan)
		}
		columns = max(columns, width)
	}
	return rows, columns
}

// unwrapLayoutTable replaces a layout table with the content of its cells.
// Cells holding only inline content become paragraphs.
func unwrapLayoutTable(table *html.Node) {
	parent := table.Parent
	if parent == nil {
		return
	}
	for _, cell := range elements(table, "td", "th") {
		if !hasBlockChild(cell) {
			if textLength(cell) == 0 && !hasMedia(cell) {
				continue
			}
			p := dom.CreateElement("p")
			moveChildren(cell, p)
			parent.InsertBefore(p, table)
			continue
		}
		for c := cell.FirstChild; c != nil; c = cell.FirstChild {
			cell.RemoveChild(c)
			parent.InsertBefore(c, table)
		}
	}
	parent.RemoveChild(table)
}

func moveChildren(from, to *html.Node) {
	for c := from.FirstChild; c != nil; c = from.FirstChild {
		from.RemoveChild(c)
		to.AppendChild(c)
	}
}
