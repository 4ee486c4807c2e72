package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/deppfellow/clothes-catalog/internal/model/cloth"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "default"}, nil
}

func (f *fakeEnqueuer) Close() error { return nil }

type sentEmail struct {
	to, id, name string
	price        float64
}

type fakeSender struct {
	sent []sentEmail
	err  error
}

func (f *fakeSender) SendClothCreatedEmail(to, clothID, clothName string, price float64) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{to: to, id: clothID, name: clothName, price: price})
	return nil
}

func newTestJobService(enq *fakeEnqueuer, sender *fakeSender) *JobService {
	logger := zerolog.Nop()
	return &JobService{
		Client:   enq,
		sender:   sender,
		logger:   &logger,
		notifyTo: "catalog@example.com",
	}
}

func TestNotifyClothCreatedEnqueuesPayload(t *testing.T) {
	enq := &fakeEnqueuer{}
	j := newTestJobService(enq, &fakeSender{})

	c := &cloth.Cloth{
		ID:   uuid.New(),
		Data: cloth.Data{Name: "Wool Coat", Price: 120},
	}
	require.NoError(t, j.NotifyClothCreated(context.Background(), c))

	require.Len(t, enq.tasks, 1)
	assert.Equal(t, TaskClothCreated, enq.tasks[0].Type())

	var p ClothCreatedPayload
	require.NoError(t, json.Unmarshal(enq.tasks[0].Payload(), &p))
	assert.Equal(t, ClothCreatedPayload{
		To:        "catalog@example.com",
		ClothID:   c.ID.String(),
		ClothName: "Wool Coat",
		Price:     120,
	}, p)
}

func TestNotifyClothCreatedEnqueueFailure(t *testing.T) {
	j := newTestJobService(&fakeEnqueuer{err: errors.New("redis down")}, &fakeSender{})

	err := j.NotifyClothCreated(context.Background(), &cloth.Cloth{ID: uuid.New()})
	assert.ErrorContains(t, err, "redis down")
}

func TestHandleClothCreatedTask(t *testing.T) {
	sender := &fakeSender{}
	j := newTestJobService(&fakeEnqueuer{}, sender)

	task, err := NewClothCreatedTask(ClothCreatedPayload{To: "a@example.com", ClothID: "id-1", ClothName: "Scarf", Price: 9.5})
	require.NoError(t, err)

	require.NoError(t, j.handleClothCreatedTask(context.Background(), task))
	assert.Equal(t, []sentEmail{{to: "a@example.com", id: "id-1", name: "Scarf", price: 9.5}}, sender.sent)
}

func TestHandleClothCreatedTaskErrors(t *testing.T) {
	j := newTestJobService(&fakeEnqueuer{}, &fakeSender{err: errors.New("resend rejected")})

	bad := asynq.NewTask(TaskClothCreated, []byte("{"))
	assert.Error(t, j.handleClothCreatedTask(context.Background(), bad))

	task, err := NewClothCreatedTask(ClothCreatedPayload{ClothID: "id-2"})
	require.NoError(t, err)
	assert.ErrorContains(t, j.handleClothCreatedTask(context.Background(), task), "resend rejected")
}
