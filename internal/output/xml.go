package output

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/ginjaninja78/cart-parser/internal/cart"
)

const xmlIndent = "  "

// XMLElement represents a generic XML element.
type XMLElement struct {
	XMLName    xml.Name
	Attributes []xml.Attr
	Value      string
	Children   []XMLElement
}

// resultXML builds the <cart> document for a parse result.
func resultXML(result *cart.ParseResult) []byte {
	root := XMLElement{
		XMLName:    xml.Name{Local: "cart"},
		Attributes: []xml.Attr{attr("total", formatNumber(result.Total))},
	}

	for i, item := range result.Items {
		root.Children = append(root.Children, XMLElement{
			XMLName: xml.Name{Local: "item"},
			Attributes: []xml.Attr{
				attr("n", strconv.Itoa(i+1)),
				attr("id", item.ID),
			},
			Children: []XMLElement{
				createSimpleElement("name", item.Name),
				createSimpleElement("price", formatNumber(item.Price)),
				createSimpleElement("quantity", formatNumber(item.Quantity)),
			},
		})
	}

	return marshalWithIndent(root)
}

// errorsXML builds the <validation> document for a report.
func errorsXML(source string, errs []cart.ValidationError) []byte {
	root := XMLElement{
		XMLName: xml.Name{Local: "validation"},
		Attributes: []xml.Attr{
			attr("valid", strconv.FormatBool(len(errs) == 0)),
		},
	}
	if source != "" {
		root.Attributes = append(root.Attributes, attr("source", source))
	}

	for _, e := range errs {
		root.Children = append(root.Children, XMLElement{
			XMLName: xml.Name{Local: "error"},
			Attributes: []xml.Attr{
				attr("type", string(e.Type)),
				attr("row", strconv.Itoa(e.Row)),
				attr("column", strconv.Itoa(e.Column)),
			},
			Value: e.Message,
		})
	}

	return marshalWithIndent(root)
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

// createSimpleElement creates a leaf element with a text value.
func createSimpleElement(name, value string) XMLElement {
	return XMLElement{
		XMLName: xml.Name{Local: name},
		Value:   value,
	}
}

// formatNumber prints the shortest decimal form, e.g. 9 or 10.32.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// marshalWithIndent writes the declaration and the element tree.
func marshalWithIndent(root XMLElement) []byte {
	var buffer bytes.Buffer
	buffer.WriteString(xml.Header)
	writeElement(&buffer, root, 0)
	return buffer.Bytes()
}

// writeElement writes an XML element to the buffer with indentation.
func writeElement(buffer *bytes.Buffer, element XMLElement, level int) {
	for i := 0; i < level; i++ {
		buffer.WriteString(xmlIndent)
	}

	buffer.WriteString("<")
	buffer.WriteString(element.XMLName.Local)

	for _, a := range element.Attributes {
		fmt.Fprintf(buffer, " %s=\"%s\"", a.Name.Local, escapeXML(a.Value))
	}

	if len(element.Children) == 0 && element.Value == "" {
		buffer.WriteString("/>\n")
		return
	}

	buffer.WriteString(">")

	if len(element.Children) == 0 {
		buffer.WriteString(escapeXML(element.Value))
	} else {
		buffer.WriteString("\n")
		for _, child := range element.Children {
			writeElement(buffer, child, level+1)
		}
		for i := 0; i < level; i++ {
			buffer.WriteString(xmlIndent)
		}
	}

	buffer.WriteString("</")
	buffer.WriteString(element.XMLName.Local)
	buffer.WriteString(">\n")
}

// escapeXML escapes special characters for XML text and attributes.
func escapeXML(s string) string {
	var buffer bytes.Buffer
	xml.EscapeText(&buffer, []byte(s))
	return buffer.String()
}
