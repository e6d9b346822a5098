package services

import (
	"context"
	"log"
	"os"
	"time"

	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"

	"arogya/internal/models/response_models"
	mem "arogya/pkg/memcache"
)

// VideoService looks up exercise tutorial videos on YouTube. It is a
// best-effort enrichment: no key or any API fault yields an empty list.
type VideoService interface {
	SearchExerciseVideos(ctx context.Context, query string, maxResults int64) []response_models.ExerciseVideo
}

type videoService struct {
	apiKey   string
	cache    mem.LookupCache
	cacheTTL time.Duration
}

func NewVideoService(cache mem.LookupCache) VideoService {
	return &videoService{
		apiKey:   os.Getenv("YOUTUBE_API_KEY"),
		cache:    cache,
		cacheTTL: 6 * time.Hour,
	}
}

func (v *videoService) SearchExerciseVideos(ctx context.Context, query string, maxResults int64) []response_models.ExerciseVideo {
	if v.apiKey == "" || query == "" {
		return []response_models.ExerciseVideo{}
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	cacheKey := "yt:" + query
	if cached, ok := v.cache.Get(cacheKey); ok {
		if videos, ok := cached.([]response_models.ExerciseVideo); ok {
			return videos
		}
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(v.apiKey))
	if err != nil {
		log.Printf("YouTube client init failed: %v", err)
		return []response_models.ExerciseVideo{}
	}

	call := service.Search.List([]string{"snippet"}).
		Q(query + " exercise tutorial").
		Type("video").
		MaxResults(maxResults).
		VideoDuration("short").
		SafeSearch("strict")
	res, err := call.Context(ctx).Do()
	if err != nil {
		log.Printf("YouTube search failed: %v", err)
		return []response_models.ExerciseVideo{}
	}

	videos := make([]response_models.ExerciseVideo, 0, len(res.Items))
	for _, item := range res.Items {
		if item.Id == nil || item.Snippet == nil {
			continue
		}
		video := response_models.ExerciseVideo{
			VideoID:     item.Id.VideoId,
			Title:       item.Snippet.Title,
			Description: item.Snippet.Description,
			ChannelName: item.Snippet.ChannelTitle,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Medium != nil {
			video.Thumbnail = item.Snippet.Thumbnails.Medium.Url
		}
		videos = append(videos, video)
	}

	v.cache.Set(cacheKey, videos, v.cacheTTL)
	return videos
}
