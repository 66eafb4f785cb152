package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ytdlpInfo mirrors the fields of `yt-dlp --dump-json` we consume.
type ytdlpInfo struct {
	ID                string                       `json:"id"`
	Title             string                       `json:"title"`
	Channel           string                       `json:"channel"`
	Uploader          string                       `json:"uploader"`
	Duration          float64                      `json:"duration"`
	Subtitles         map[string][]ytdlpSubFormat `json:"subtitles"`
	AutomaticCaptions map[string][]ytdlpSubFormat `json:"automatic_captions"`
}

type ytdlpSubFormat struct {
	URL string `json:"url"`
	Ext string `json:"ext"`
}

// fetchViaYtDlp asks yt-dlp for the video metadata and caption URLs,
// then downloads the chosen json3 track directly.
func (f *implFetcher) fetchViaYtDlp(ctx context.Context, videoID string) (*Transcript, error) {
	out, err := f.executor.Execute(ctx, f.ytdlpPath,
		"--quiet",
		"--no-warnings",
		"--skip-download",
		"--dump-json",
		WatchURL(videoID),
	)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp dump-json: %w", err)
	}

	var info ytdlpInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return nil, fmt.Errorf("parse yt-dlp output: %w", err)
	}

	trackURL, lang, auto, err := f.pickYtDlpTrack(&info)
	if err != nil {
		return nil, err
	}

	segments, err := f.fetchJSON3(ctx, trackURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("caption track for %s is empty", videoID)
	}

	channel := info.Channel
	if channel == "" {
		channel = info.Uploader
	}
	return &Transcript{
		VideoID:       videoID,
		Title:         info.Title,
		Channel:       channel,
		URL:           WatchURL(videoID),
		Duration:      info.Duration,
		Language:      lang,
		AutoGenerated: auto,
		Segments:      segments,
	}, nil
}

func (f *implFetcher) pickYtDlpTrack(info *ytdlpInfo) (url, lang string, auto bool, err error) {
	pick := func(subs map[string][]ytdlpSubFormat) (string, string) {
		for _, want := range f.languages {
			for code, formats := range subs {
				if code != want && !strings.HasPrefix(code, want+"-") {
					continue
				}
				for _, fm := range formats {
					if fm.Ext == "json3" {
						return fm.URL, code
					}
				}
			}
		}
		return "", ""
	}

	if u, code := pick(info.Subtitles); u != "" {
		return u, code, false, nil
	}
	if f.allowAuto {
		if u, code := pick(info.AutomaticCaptions); u != "" {
			return u, code, true, nil
		}
	}
	return "", "", false, fmt.Errorf("yt-dlp found no caption track for languages %v", f.languages)
}

func (f *implFetcher) fetchJSON3(ctx context.Context, trackURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, trackURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch caption track: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch caption track: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 20<<20))
	if err != nil {
		return nil, err
	}

	var tt timedText
	if err := json.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse caption track: %w", err)
	}
	return eventsToSegments(tt.Events), nil
}
