package fetchers

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	rates "github.com/malusev998/tariff-rates"
)

const (
	currencyCodeElement = "currencyCode"
	rateElement         = "rateNew"
)

var byteOrderMark = []byte("\xef\xbb\xbf")

// element is a node of a parsed document. Only elements and their leading
// text are kept. text is set when the first child of the element is
// character data (adjacent text and CDATA runs are merged).
type element struct {
	name     string
	text     string
	hasText  bool
	sealed   bool
	parent   *element
	children []*element
}

// parseDocument builds the element tree of body. The returned node is the
// document itself; its children are the top level elements. A leading UTF-8
// byte order mark is skipped and non UTF-8 encodings are decoded from the
// xml declaration.
func parseDocument(body []byte) (*element, error) {
	decoder := xml.NewDecoder(bytes.NewReader(bytes.TrimPrefix(body, byteOrderMark)))
	decoder.Strict = true
	decoder.CharsetReader = charset.NewReaderLabel

	root := &element{}
	current := root

	for {
		token, err := decoder.Token()

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %v", rates.ErrMalformedDocument, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if current == root && len(root.children) > 0 {
				return nil, fmt.Errorf("%w: more than one root element", rates.ErrMalformedDocument)
			}

			child := &element{name: t.Name.Local, parent: current}
			current.children = append(current.children, child)
			current.sealed = true
			current = child
		case xml.EndElement:
			current = current.parent
		case xml.CharData:
			if current == root {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, fmt.Errorf("%w: text outside of the root element", rates.ErrMalformedDocument)
				}

				continue
			}

			if !current.sealed {
				current.text += string(t)
				current.hasText = true
			}
		case xml.Comment, xml.ProcInst:
			current.sealed = true
		}
	}

	if len(root.children) == 0 {
		return nil, fmt.Errorf("%w: no root element", rates.ErrMalformedDocument)
	}

	return root, nil
}

// find returns the first element in document order, starting with e itself,
// that matches.
func (e *element) find(match func(*element) bool) *element {
	if e.name != "" && match(e) {
		return e
	}

	for _, child := range e.children {
		if found := child.find(match); found != nil {
			return found
		}
	}

	return nil
}

// ExtractRate returns the rateNew text that belongs to the currencyCode
// element holding exactly currency.
func ExtractRate(body []byte, currency string) (string, error) {
	doc, err := parseDocument(body)
	if err != nil {
		return "", err
	}

	code := doc.find(func(e *element) bool {
		return e.name == currencyCodeElement && e.text == currency
	})

	if code == nil {
		return "", rates.ErrNotFound
	}

	if code.parent == nil || code.parent == doc {
		return "", rates.ErrMissingParent
	}

	rate := code.parent.find(func(e *element) bool {
		return e.name == rateElement
	})

	if rate == nil {
		return "", rates.ErrMissingRate
	}

	if !rate.hasText {
		return "", rates.ErrMissingRateText
	}

	return rate.text, nil
}
