package node

import (
	"context"
	"testing"

	"github.com/lioia/birank/pkg/graph"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	keys []string
	msgs []amqp.Publishing
}

func (p *recordingPublisher) PublishWithContext(_ context.Context, _, key string, _, _ bool, msg amqp.Publishing) error {
	p.keys = append(p.keys, key)
	p.msgs = append(p.msgs, msg)
	return nil
}

func TestQueueRoundTrip(t *testing.T) {
	worker := newTestNode(t)
	worker.Role = Worker
	master := newTestNode(t)
	pub := &recordingPublisher{}
	ctx := context.Background()

	job := Job{ID: "q1", Kind: Degree, Edges: sampleEdges(), Options: worker.Options}
	require.NoError(t, publish(ctx, pub, "work", job.ID, job))
	require.Equal(t, []string{"work"}, pub.keys)
	require.Equal(t, "q1", pub.msgs[0].MessageId)
	require.Equal(t, "application/x-protobuf", pub.msgs[0].ContentType)

	res, err := worker.processJob(pub.msgs[0].Body)
	require.NoError(t, err)
	require.Equal(t, "q1", res.ID)
	require.Empty(t, res.Error)

	require.NoError(t, publish(ctx, pub, "result", res.ID, res))
	require.NoError(t, master.storeResult(pub.msgs[1].Body))
	stored, ok := master.Results.Get("q1")
	require.True(t, ok)
	require.Equal(t, res.TopDegree, stored.TopDegree)
}

func TestProcessJob_FailureIsReported(t *testing.T) {
	worker := newTestNode(t)
	pub := &recordingPublisher{}
	job := Job{ID: "q2", Kind: BiRank, Edges: []graph.Edge{graph.Weighted("a", "b", -2)}, Options: worker.Options}
	require.NoError(t, publish(context.Background(), pub, "work", job.ID, job))

	res, err := worker.processJob(pub.msgs[0].Body)
	require.NoError(t, err)
	require.Contains(t, res.Error, "invalid edge weight")
}

func TestProcessJob_Undecodable(t *testing.T) {
	worker := newTestNode(t)
	_, err := worker.processJob([]byte{0xff, 0xff, 0xff})
	require.Error(t, err)
	require.Error(t, worker.storeResult([]byte{0xff, 0xff, 0xff}))
}
