package workbook

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strings"
)

// Helpers for walking the package parts excelize does not expose.

func readPart(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, nil
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

func readText(d *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return sb.String(), err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// resolvePart turns a relationship target into a package path.
func resolvePart(target, baseDir string) string {
	switch {
	case strings.HasPrefix(target, "../"):
		for strings.HasPrefix(target, "../") {
			target = strings.TrimPrefix(target, "../")
		}
		return "xl/" + target
	case strings.HasPrefix(target, "/"):
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPath returns the relationships part for a package part.
func relsPath(part string) string {
	i := strings.LastIndex(part, "/")
	return part[:i+1] + "_rels/" + part[i+1:] + ".rels"
}

type relationship struct {
	id, target, kind string
}

func parseRels(data []byte) []relationship {
	var out []relationship
	d := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			out = append(out, relationship{
				id:     attr(se, "Id"),
				target: attr(se, "Target"),
				kind:   strings.ToLower(attr(se, "Type")),
			})
		}
	}
	return out
}

// sheetPart finds the worksheet part for the named sheet.
func sheetPart(r *zip.Reader, sheet string) (string, error) {
	wb, err := readPart(r, "xl/workbook.xml")
	if err != nil || wb == nil {
		return "", err
	}
	var rID string
	d := xml.NewDecoder(strings.NewReader(string(wb)))
	for rID == "" {
		tok, err := d.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "sheet" && attr(se, "name") == sheet {
			rID = attr(se, "id")
		}
	}
	if rID == "" {
		return "", nil
	}

	rels, err := readPart(r, "xl/_rels/workbook.xml.rels")
	if err != nil || rels == nil {
		return "", err
	}
	for _, rel := range parseRels(rels) {
		if rel.id == rID && strings.Contains(rel.kind, "worksheet") {
			return resolvePart(rel.target, "xl"), nil
		}
	}
	return "", nil
}
