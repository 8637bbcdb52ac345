package searcher

import "errors"

// Search defaults

const DefaultDepth = 1 // Player moves per rollout
const MaxDepth = 16    // Upper bound for WithDepth

var ErrNoLegalAction = errors.New("no legal action")
