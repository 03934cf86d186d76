package service

import (
	"context"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"superpump.app/api/common/id"
	"superpump.app/api/internal/model"
)

var _ = Describe("PostService", func() {
	var (
		ctx      context.Context
		initOnce sync.Once

		workspaces *fakeWorkspaceStore
		posts      *fakePostStore
		producer   *fakeProducer
		svc        PostService

		workspaceID int64
	)

	trackInput := func(url string) TrackPostInput {
		return TrackPostInput{
			MemberID:   "U1",
			MemberName: "Ada",
			URL:        url,
			PostedAt:   time.Now(),
			Likes:      3,
			Comments:   1,
			Reposts:    0,
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		initOnce.Do(func() {
			Expect(id.Init(1)).To(Succeed())
		})

		workspaces = newFakeWorkspaceStore()
		posts = newFakePostStore()
		producer = &fakeProducer{}
		svc = NewPostService(workspaces, posts, producer)

		workspaceID = id.New()
		workspaces.seed(&model.Workspace{ID: workspaceID, UserID: 42, IsConnected: true})
	})

	Describe("Track", func() {
		It("fails when the tenant has no workspace", func() {
			_, err := svc.Track(ctx, 7, trackInput("https://x"))
			Expect(err).To(MatchError(ErrWorkspaceNotFound))
		})

		It("stores a new post and announces it", func() {
			post, err := svc.Track(ctx, 42, trackInput("https://linkedin.test/p1"))
			Expect(err).NotTo(HaveOccurred())
			Expect(post.WorkspaceID).To(Equal(workspaceID))
			Expect(post.Likes).To(Equal(int32(3)))

			events := producer.enqueued()
			Expect(events).To(HaveLen(1))
			Expect(events[0].PostID).To(Equal(post.ID))
			Expect(events[0].WorkspaceID).To(Equal(workspaceID))
		})

		It("refreshes engagement for a post already tracked by URL", func() {
			first, err := svc.Track(ctx, 42, trackInput("https://linkedin.test/p1"))
			Expect(err).NotTo(HaveOccurred())

			update := trackInput("https://linkedin.test/p1")
			update.Likes = 10
			update.Comments = 4

			second, err := svc.Track(ctx, 42, update)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.ID).To(Equal(first.ID))
			Expect(second.Likes).To(Equal(int32(10)))
			Expect(second.Comments).To(Equal(int32(4)))

			// Only the first sighting is announced.
			Expect(producer.enqueued()).To(HaveLen(1))
		})

		It("keeps the post when announcing fails", func() {
			producer.enqueueErr = context.DeadlineExceeded

			post, err := svc.Track(ctx, 42, trackInput("https://linkedin.test/p1"))
			Expect(err).NotTo(HaveOccurred())

			stored, err := posts.GetByID(ctx, post.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.URL).To(Equal("https://linkedin.test/p1"))
		})
	})

	Describe("Metrics", func() {
		It("aggregates totals and ranks members by engagement", func() {
			seed := func(memberID, memberName, url string, likes, comments, reposts int32) {
				posts.seed(&model.Post{
					ID:          id.New(),
					WorkspaceID: workspaceID,
					MemberID:    memberID,
					MemberName:  memberName,
					URL:         url,
					Likes:       likes,
					Comments:    comments,
					Reposts:     reposts,
				})
			}
			seed("U1", "Ada", "https://p/1", 10, 2, 1)
			seed("U1", "Ada", "https://p/2", 5, 0, 0)
			seed("U2", "Grace", "https://p/3", 30, 5, 2)

			metrics, err := svc.Metrics(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics.TotalPosts).To(Equal(int32(3)))
			Expect(metrics.TotalLikes).To(Equal(int32(45)))
			Expect(metrics.TotalComments).To(Equal(int32(7)))
			Expect(metrics.TotalReposts).To(Equal(int32(3)))

			Expect(metrics.Leaderboard).To(HaveLen(2))
			Expect(metrics.Leaderboard[0].MemberID).To(Equal("U2"))
			Expect(metrics.Leaderboard[0].Posts).To(Equal(int32(1)))
			Expect(metrics.Leaderboard[1].MemberID).To(Equal("U1"))
			Expect(metrics.Leaderboard[1].Posts).To(Equal(int32(2)))
		})

		It("returns an empty leaderboard for a quiet workspace", func() {
			metrics, err := svc.Metrics(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(metrics.TotalPosts).To(BeZero())
			Expect(metrics.Leaderboard).To(BeEmpty())
		})
	})
})
