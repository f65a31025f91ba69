package analyzer

import "github.com/tidwall/gjson"

// contentFields are probed in order; the first truthy value wins.
var contentFields = []string{"content", "text", "message", "body", "value"}

var userFields = []string{"user", "sender"}

// shape is the layout of a conversation document, decided once per extraction.
type shape int

const (
	shapeUnrecognized shape = iota
	shapeSequence
	shapeMessagesField
	shapeConversationField
	shapeDataField
	shapeKeyValue
)

// sequenceFields maps the wrapper field names to their shape, in probe order.
var sequenceFields = []struct {
	name  string
	shape shape
}{
	{"messages", shapeMessagesField},
	{"conversation", shapeConversationField},
	{"data", shapeDataField},
}

// classify returns the document shape and the value holding the messages.
func classify(doc gjson.Result) (shape, gjson.Result) {
	if doc.IsArray() {
		return shapeSequence, doc
	}
	if !doc.IsObject() {
		return shapeUnrecognized, gjson.Result{}
	}
	for _, f := range sequenceFields {
		if v := doc.Get(f.name); v.IsArray() {
			return f.shape, v
		}
	}
	return shapeKeyValue, doc
}

// Extract flattens a conversation document into an ordered message list.
// Unknown shapes yield an empty list, never an error.
func Extract(doc gjson.Result) []Message {
	sh, v := classify(doc)
	switch sh {
	case shapeSequence, shapeMessagesField, shapeConversationField, shapeDataField:
		return fromSequence(v)
	case shapeKeyValue:
		return fromKeyValue(v)
	default:
		return nil
	}
}

func fromSequence(seq gjson.Result) []Message {
	items := seq.Array()
	msgs := make([]Message, 0, len(items))
	for _, item := range items {
		msgs = append(msgs, toMessage(item))
	}
	return msgs
}

// fromKeyValue keeps document key order: string values become the content of
// a message sent by the key, objects are messages themselves.
func fromKeyValue(obj gjson.Result) []Message {
	var msgs []Message
	obj.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.Type == gjson.String:
			msgs = append(msgs, Message{User: key.String(), Content: value.Str})
		case value.IsObject():
			msgs = append(msgs, toMessage(value))
		}
		return true
	})
	return msgs
}

func toMessage(item gjson.Result) Message {
	if item.Type == gjson.String {
		return Message{Content: item.Str}
	}
	if !item.IsObject() {
		return Message{Content: serialize(item)}
	}

	msg := Message{}
	if u, ok := firstPresent(item, userFields); ok {
		msg.User = text(u)
	}
	if c, ok := firstPresent(item, contentFields); ok {
		msg.Content = text(c)
	} else {
		msg.Content = serialize(item)
	}
	return msg
}

// firstPresent returns the first candidate field holding a truthy value:
// null, false, 0 and "" are skipped; objects and arrays, even empty, count.
func firstPresent(obj gjson.Result, fields []string) (gjson.Result, bool) {
	for _, name := range fields {
		if v := obj.Get(name); truthy(v) {
			return v, true
		}
	}
	return gjson.Result{}, false
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.String:
		return v.Str != ""
	case gjson.Number:
		return v.Num != 0
	default:
		return v.Exists()
	}
}

func text(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.Str
	}
	return serialize(v)
}

// serialize renders a value as compact JSON.
func serialize(v gjson.Result) string {
	if v.Type != gjson.JSON {
		return v.Raw
	}
	return v.Get("@ugly").Raw
}
