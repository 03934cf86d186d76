package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"superpump.app/api/common/logger"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/queue"
	"superpump.app/api/internal/service/integration"
	"superpump.app/api/internal/store"
)

type Config struct {
	MaxAttempts int
}

// Notifier consumes post events and announces new posts in the workspace's
// configured Slack channel.
type Notifier struct {
	consumer        *queue.RedisConsumer
	workspaceStore  store.WorkspaceStore
	credentialStore store.SlackCredentialStore
	postStore       store.PostStore
	api             integration.API
	cfg             Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer *queue.RedisConsumer, workspaceStore store.WorkspaceStore, credentialStore store.SlackCredentialStore, postStore store.PostStore, api integration.API, cfg Config) *Notifier {
	return &Notifier{
		consumer:        consumer,
		workspaceStore:  workspaceStore,
		credentialStore: credentialStore,
		postStore:       postStore,
		api:             api,
		cfg:             cfg,
		stopCh:          make(chan struct{}),
		stoppedCh:       make(chan struct{}),
	}
}

func (n *Notifier) Run(ctx context.Context) error {
	defer close(n.stoppedCh)

	slog.InfoContext(ctx, "notifier started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-n.stopCh:
			slog.InfoContext(ctx, "notifier stopping")
			return nil
		default:
			if err := n.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (n *Notifier) Stop() {
	close(n.stopCh)
	<-n.stoppedCh
}

func (n *Notifier) processOneBatch(ctx context.Context) error {
	messages, err := n.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := n.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "message processing failed",
				"error", err,
				"message_id", msg.ID,
				"post_id", msg.PostID)
			n.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (n *Notifier) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in message processing",
				"panic", r,
				"message_id", msg.ID,
				"post_id", msg.PostID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return n.ProcessMessage(ctx, msg)
}

// ProcessMessage delivers the notification for one post event. Events for
// disconnected workspaces or workspaces without a notify channel are dropped,
// not retried.
func (n *Notifier) ProcessMessage(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: logger.Ptr(msg.WorkspaceID),
		PostID:      logger.Ptr(msg.PostID),
		Component:   "notify",
	})

	slog.InfoContext(ctx, "processing post event",
		"message_id", msg.ID,
		"attempt", msg.Attempt)

	ws, err := n.workspaceStore.GetByID(ctx, msg.WorkspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "workspace gone, dropping event")
			return n.ack(ctx, msg)
		}
		return fmt.Errorf("fetching workspace: %w", err)
	}

	if !ws.IsConnected || ws.SlackAuthID == nil || ws.NotifyChannel == nil || *ws.NotifyChannel == "" {
		slog.InfoContext(ctx, "workspace not set up for notifications, dropping event")
		return n.ack(ctx, msg)
	}

	post, err := n.postStore.GetByID(ctx, msg.PostID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "post gone, dropping event")
			return n.ack(ctx, msg)
		}
		return fmt.Errorf("fetching post: %w", err)
	}

	if post.NotifiedAt != nil {
		// Redelivery after a crash between PostMessage and Ack.
		return n.ack(ctx, msg)
	}

	cred, err := n.credentialStore.GetByID(ctx, *ws.SlackAuthID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "credential gone, dropping event")
			return n.ack(ctx, msg)
		}
		return fmt.Errorf("fetching credential: %w", err)
	}

	if err := n.api.PostMessage(ctx, cred.AccessToken, *ws.NotifyChannel, notificationText(post)); err != nil {
		return fmt.Errorf("posting message: %w", err)
	}

	if err := n.postStore.MarkNotified(ctx, post.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("marking post notified: %w", err)
	}

	slog.InfoContext(ctx, "post notification sent", "channel", *ws.NotifyChannel)

	return n.ack(ctx, msg)
}

func (n *Notifier) ack(ctx context.Context, msg queue.Message) error {
	if err := n.consumer.Ack(ctx, msg); err != nil {
		// Message will be redelivered, the notified_at check keeps this safe.
		slog.WarnContext(ctx, "failed to ACK message",
			"error", err,
			"message_id", msg.ID)
	}
	return nil
}

func (n *Notifier) handleFailedMessage(ctx context.Context, msg queue.Message, err error) {
	if msg.Attempt >= n.cfg.MaxAttempts {
		slog.ErrorContext(ctx, "max attempts reached, sending to DLQ",
			"message_id", msg.ID,
			"post_id", msg.PostID,
			"attempts", msg.Attempt)
		if dlqErr := n.consumer.SendDLQ(ctx, msg, err.Error()); dlqErr != nil {
			slog.ErrorContext(ctx, "failed to send to DLQ", "error", dlqErr)
		}
		return
	}

	slog.WarnContext(ctx, "requeuing failed message",
		"message_id", msg.ID,
		"post_id", msg.PostID,
		"attempt", msg.Attempt)
	if requeueErr := n.consumer.Requeue(ctx, msg, err.Error()); requeueErr != nil {
		slog.ErrorContext(ctx, "failed to requeue message", "error", requeueErr)
	}
}

func notificationText(post *model.Post) string {
	title := post.URL
	if post.Title != nil && *post.Title != "" {
		title = *post.Title
	}
	return fmt.Sprintf("New post by %s: %s\n%s", post.MemberName, title, post.URL)
}
