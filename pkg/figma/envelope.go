package figma

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// ExtractNodes locates the root node list inside a payload of unknown shape.
// It probes, in order: a nested data.document.{id}.document mapping (the
// REST export envelope), the nodes.{id}.document mapping of the file-nodes
// API response, a direct document.{id}.document mapping, an object already
// shaped like a root-node list, and finally a single node object.
//
// Extraction fails softly: a payload matching none of the shapes is tried
// as one bare node, and if that also fails an empty list is returned so the
// caller can report "no nodes found" rather than crash. Node order follows
// the order of appearance in the JSON text.
func ExtractNodes(payload []byte) []Node {
	if !gjson.ValidBytes(payload) {
		return nil
	}
	root := gjson.ParseBytes(payload)
	if !root.IsObject() {
		return nil
	}

	if v := root.Get("data.document"); v.IsObject() {
		if nodes := documentMapNodes(v); len(nodes) > 0 {
			return nodes
		}
	}
	if v := root.Get("nodes"); v.IsObject() {
		if nodes := documentMapNodes(v); len(nodes) > 0 {
			return nodes
		}
	}
	if v := root.Get("document"); v.IsObject() {
		if nodes := documentMapNodes(v); len(nodes) > 0 {
			return nodes
		}
	}
	if nodes := documentMapNodes(root); len(nodes) > 0 {
		return nodes
	}
	if node, ok := decodeNode(root); ok {
		return []Node{node}
	}
	return nil
}

// documentMapNodes interprets v as a {nodeID: {document: node}} mapping and
// decodes every wrapped document, keeping JSON text order.
func documentMapNodes(v gjson.Result) []Node {
	var nodes []Node
	v.ForEach(func(_, entry gjson.Result) bool {
		doc := entry.Get("document")
		if !doc.IsObject() {
			return true
		}
		if node, ok := decodeNode(doc); ok {
			nodes = append(nodes, node)
		}
		return true
	})
	return nodes
}

// decodeNode unmarshals a located subtree into a Node. Anything without an
// id and a type is not a node.
func decodeNode(v gjson.Result) (Node, bool) {
	var node Node
	if err := json.Unmarshal([]byte(v.Raw), &node); err != nil {
		return Node{}, false
	}
	if node.ID == "" || node.Type == "" {
		return Node{}, false
	}
	return node, true
}
