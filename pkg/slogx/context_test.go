package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestWithRequestIDTagsLogLines(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithContext(context.Background(), base)
	ctx = WithRequestID(ctx, "01HZX5TQ2M")

	FromContext(ctx).Info("request sent")
	require.Contains(t, buf.String(), `"req_id":"01HZX5TQ2M"`)
}
