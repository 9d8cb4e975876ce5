package model

// ChatReply is the result of one chat pipeline run. Sources carries the
// metadata of the matches that grounded the reply, in retrieval order; it is
// intentionally not deduplicated.
type ChatReply struct {
	Reply   string
	Sources []map[string]string
}
