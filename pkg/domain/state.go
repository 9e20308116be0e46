package domain

// State is a serializable snapshot of one traversal.
// It is what session stores persist; the node registry itself is never stored.
type State struct {
	// Tree is the name of the tree being traversed.
	Tree string `json:"tree"`

	// CurrentNode is the name of the active node.
	CurrentNode string `json:"current_node"`

	// History lists the nodes visited, start node first.
	History []string `json:"history"`

	// Answers holds the last accepted answer identifiers per node.
	Answers map[string][]string `json:"answers,omitempty"`

	// Sealed holds an encrypted State. When set, only Tree is meaningful.
	Sealed []byte `json:"sealed,omitempty"`
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	out := &State{
		Tree:        s.Tree,
		CurrentNode: s.CurrentNode,
		History:     append([]string(nil), s.History...),
	}
	if s.Sealed != nil {
		out.Sealed = append([]byte(nil), s.Sealed...)
	}
	if s.Answers != nil {
		out.Answers = make(map[string][]string, len(s.Answers))
		for k, v := range s.Answers {
			out.Answers[k] = append([]string(nil), v...)
		}
	}
	return out
}
