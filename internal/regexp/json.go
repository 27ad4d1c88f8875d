package regexp

import (
	"github.com/goccy/go-json"
)

// Nodes marshal as single-key objects tagged by variant, so consumers of
// the dumped tree can dispatch without a schema:
//
//	{"concat":{"left":{"symbol":"a"},"right":{"star":{"symbol":"b"}}}}

type pairJSON struct {
	Left  Node `json:"left"`
	Right Node `json:"right"`
}

type rangeJSON struct {
	Low  string `json:"low"`
	High string `json:"high"`
}

func (n *Symbol) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"symbol": n.Name})
}

func (n *Literal) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"literal": n.Text})
}

func (n *Union) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]pairJSON{"union": {Left: n.Left, Right: n.Right}})
}

func (n *Concat) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]pairJSON{"concat": {Left: n.Left, Right: n.Right}})
}

func (n *Star) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Node{"star": n.Inner})
}

func (n *OnePlus) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]Node{"one_plus": n.Inner})
}

func (n *CharClass) MarshalJSON() ([]byte, error) {
	items := n.Items
	if items == nil {
		items = []ClassItem{}
	}
	return json.Marshal(map[string][]ClassItem{"class": items})
}

func (n *Epsilon) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]bool{"epsilon": true})
}

func (i *Singles) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"singles": i.Chars})
}

func (i *Range) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]rangeJSON{"range": {Low: string(i.Low), High: string(i.High)}})
}
