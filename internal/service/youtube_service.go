package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

type ChannelInfo struct {
	ID    string
	Title string
	Link  string
}

// YoutubeService resolves channel metadata for linked accounts.
type YoutubeService interface {
	Channel(ctx context.Context, channelID string) (*ChannelInfo, error)
}

type youtubeService struct {
	yt *youtube.Service
}

// NewYoutubeService builds a Data API client authenticated by apiKey.
func NewYoutubeService(ctx context.Context, apiKey string, opts ...option.ClientOption) (YoutubeService, error) {
	if apiKey == "" {
		return nil, errors.New("youtube api key is empty")
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	yt, err := youtube.NewService(ctx, opts...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	return &youtubeService{yt: yt}, nil
}

func (s *youtubeService) Channel(ctx context.Context, channelID string) (*ChannelInfo, error) {
	resp, err := s.yt.Channels.List([]string{"snippet"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("error fetching channel: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, notFound("youtube channel")
	}

	channel := resp.Items[0]
	info := &ChannelInfo{
		ID:    channel.Id,
		Title: channel.Snippet.Title,
		Link:  "https://www.youtube.com/channel/" + channel.Id,
	}
	if channel.Snippet.CustomUrl != "" {
		info.Link = "https://www.youtube.com/" + channel.Snippet.CustomUrl
	}
	return info, nil
}
