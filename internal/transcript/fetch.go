package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

var rePlayerResponse = regexp.MustCompile(`ytInitialPlayerResponse\s*=\s*`)

// captionTrack mirrors the relevant part of ytInitialPlayerResponse.
type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated
}

type playerResponse struct {
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	VideoDetails struct {
		VideoID       string `json:"videoId"`
		Title         string `json:"title"`
		Author        string `json:"author"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`
}

// timedTextEvent is one cue of the json3 timedtext format.
type timedTextEvent struct {
	StartMs    int64 `json:"tStartMs"`
	DurationMs int64 `json:"dDurationMs"`
	Segs       []struct {
		UTF8 string `json:"utf8"`
	} `json:"segs"`
}

type timedText struct {
	Events []timedTextEvent `json:"events"`
}

// Fetch resolves the input to a video ID, reads the watch page for caption
// tracks and metadata, and downloads the best matching track as json3.
func (f *implFetcher) Fetch(ctx context.Context, urlOrID string) (*Transcript, error) {
	videoID := ExtractVideoID(urlOrID)
	if videoID == "" {
		return nil, fmt.Errorf("invalid YouTube URL or video ID: %q", urlOrID)
	}

	t, err := f.fetchNative(ctx, videoID)
	if err == nil {
		return t, nil
	}

	if f.executor == nil {
		return nil, err
	}

	f.logger.Warn(ctx, "Direct caption fetch failed for %s (%v), falling back to yt-dlp", videoID, err)
	t, dlErr := f.fetchViaYtDlp(ctx, videoID)
	if dlErr != nil {
		return nil, fmt.Errorf("fetch transcript for %s: %w (yt-dlp fallback: %v)", videoID, err, dlErr)
	}
	return t, nil
}

func (f *implFetcher) fetchNative(ctx context.Context, videoID string) (*Transcript, error) {
	pr, err := f.fetchPlayerResponse(ctx, videoID)
	if err != nil {
		return nil, err
	}

	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	track, err := f.pickTrack(tracks)
	if err != nil {
		return nil, err
	}

	segments, err := f.fetchTrack(ctx, track.BaseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("caption track for %s is empty", videoID)
	}

	duration, _ := strconv.ParseFloat(pr.VideoDetails.LengthSeconds, 64)
	return &Transcript{
		VideoID:       videoID,
		Title:         pr.VideoDetails.Title,
		Channel:       pr.VideoDetails.Author,
		URL:           WatchURL(videoID),
		Duration:      duration,
		Language:      track.LanguageCode,
		AutoGenerated: track.Kind == "asr",
		Segments:      segments,
	}, nil
}

func (f *implFetcher) fetchPlayerResponse(ctx context.Context, videoID string) (*playerResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, WatchURL(videoID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch watch page: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, fmt.Errorf("read watch page: %w", err)
	}

	loc := rePlayerResponse.FindIndex(body)
	if loc == nil {
		return nil, fmt.Errorf("player response not found in watch page")
	}

	var pr playerResponse
	dec := json.NewDecoder(strings.NewReader(string(body[loc[1]:])))
	if err := dec.Decode(&pr); err != nil {
		return nil, fmt.Errorf("parse player response: %w", err)
	}
	return &pr, nil
}

// pickTrack prefers manually authored tracks in language preference order,
// then auto-generated ones if allowed.
func (f *implFetcher) pickTrack(tracks []captionTrack) (*captionTrack, error) {
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no caption tracks available")
	}

	match := func(wantAuto bool) *captionTrack {
		for _, lang := range f.languages {
			for i := range tracks {
				tr := &tracks[i]
				isAuto := tr.Kind == "asr"
				if isAuto != wantAuto {
					continue
				}
				if tr.LanguageCode == lang || strings.HasPrefix(tr.LanguageCode, lang+"-") {
					return tr
				}
			}
		}
		return nil
	}

	if tr := match(false); tr != nil {
		return tr, nil
	}
	if f.allowAuto {
		if tr := match(true); tr != nil {
			return tr, nil
		}
		// Any manual track beats nothing when no preferred language matched
		for i := range tracks {
			if tracks[i].Kind != "asr" {
				return &tracks[i], nil
			}
		}
		return &tracks[0], nil
	}
	return nil, fmt.Errorf("no caption track for languages %v", f.languages)
}

func (f *implFetcher) fetchTrack(ctx context.Context, baseURL string) ([]Segment, error) {
	sep := "?"
	if strings.Contains(baseURL, "?") {
		sep = "&"
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+sep+"fmt=json3", nil)
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

	var tt timedText
	if err := json.NewDecoder(resp.Body).Decode(&tt); err != nil {
		return nil, fmt.Errorf("parse caption track: %w", err)
	}
	return eventsToSegments(tt.Events), nil
}

func eventsToSegments(events []timedTextEvent) []Segment {
	var segments []Segment
	for _, ev := range events {
		var b strings.Builder
		for _, s := range ev.Segs {
			b.WriteString(s.UTF8)
		}
		text := strings.Join(strings.Fields(b.String()), " ")
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    float64(ev.StartMs) / 1000,
			Duration: float64(ev.DurationMs) / 1000,
		})
	}
	return segments
}
