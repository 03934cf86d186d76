package id

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

// Init sets up the process-wide Snowflake node. Call it once at startup,
// before any handler or worker can generate an id. Each deployed process
// needs a distinct node id.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
	}
	node = n
	return nil
}

// New returns a time-ordered int64 id, unique across processes as long as
// node ids don't collide.
func New() int64 {
	return node.Generate().Int64()
}
