package billing

import (
	"fmt"
	"strconv"

	"github.com/bwmarrin/snowflake"
)

// RowToken identifies a line item independent of its position
type RowToken int64

func (t RowToken) String() string { return strconv.FormatInt(int64(t), 10) }

// TokenSource hands out row tokens. Implementations must never repeat a token.
type TokenSource interface {
	Next() RowToken
}

type snowflakeTokens struct {
	node *snowflake.Node
}

// NewSnowflakeTokens returns a TokenSource backed by a snowflake node.
// Snowflake IDs are strictly increasing per node, so tokens are never reused.
func NewSnowflakeTokens(nodeID int64) (TokenSource, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create token node: %w", err)
	}
	return &snowflakeTokens{node: node}, nil
}

func (s *snowflakeTokens) Next() RowToken {
	return RowToken(s.node.Generate().Int64())
}

// SequenceTokens is a deterministic TokenSource counting up from 1
type SequenceTokens struct {
	last RowToken
}

func (s *SequenceTokens) Next() RowToken {
	s.last++
	return s.last
}
