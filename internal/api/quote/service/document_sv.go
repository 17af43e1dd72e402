package quoteService

import (
	"RentalCopilot/internal/api/quote"
	contextPkg "RentalCopilot/pkg/context"
	"RentalCopilot/pkg/pdf"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// QuoteDocument renders the cached quote as a PDF, uploads it and hands
// back a presigned link.
func (s *quoteService) QuoteDocument(ctx context.Context, runID string) (quote.DocumentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	snapshot, err := s.loadSnapshot(ctx, runID)
	if err != nil {
		return quote.DocumentResponse{}, err
	}

	doc, err := s.pdf.RenderQuote(pdf.QuoteDocument{
		RunID:   snapshot.RunID,
		Quote:   snapshot.Quote,
		Days:    snapshot.Days,
		Summary: snapshot.Summary,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"run_id":     runID,
			"error":      err.Error(),
		}).Error("Failed to render quote PDF")
		return quote.DocumentResponse{}, quote.ErrDocumentFailed
	}

	url, err := s.uploadAndPresign(fmt.Sprintf("quotes/%s.pdf", runID), doc, "application/pdf")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"run_id":     runID,
			"error":      err.Error(),
		}).Error("Failed to upload quote PDF")
		return quote.DocumentResponse{}, quote.ErrDocumentFailed
	}

	return quote.DocumentResponse{RunID: runID, URL: url}, nil
}

// QuoteAudio speaks the quote summary through the TTS service and
// returns a presigned link to the generated clip.
func (s *quoteService) QuoteAudio(ctx context.Context, runID string) (quote.DocumentResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	snapshot, err := s.loadSnapshot(ctx, runID)
	if err != nil {
		return quote.DocumentResponse{}, err
	}

	text := snapshot.Summary
	if text == "" {
		text = spokenQuote(snapshot)
	}

	clip, err := s.tts.GenerateAudio(text)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"run_id":     runID,
			"error":      err.Error(),
		}).Error("Failed to synthesize quote audio")
		return quote.DocumentResponse{}, quote.ErrAudioFailed
	}

	url, err := s.uploadAndPresign(fmt.Sprintf("quotes/%s.mp3", runID), clip, "audio/mpeg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"run_id":     runID,
			"error":      err.Error(),
		}).Error("Failed to upload quote audio")
		return quote.DocumentResponse{}, quote.ErrAudioFailed
	}

	return quote.DocumentResponse{RunID: runID, URL: url}, nil
}

// StreamQuoteAudio pushes synthesized speech into out chunk by chunk,
// so callers can start playback before synthesis finishes.
func (s *quoteService) StreamQuoteAudio(ctx context.Context, runID string, out io.Writer) error {
	snapshot, err := s.loadSnapshot(ctx, runID)
	if err != nil {
		return err
	}

	if s.streamTTS == nil {
		return quote.ErrAudioFailed
	}

	text := snapshot.Summary
	if text == "" {
		text = spokenQuote(snapshot)
	}

	if err := s.streamTTS.StreamAudio(text, out); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"run_id":     runID,
			"error":      err.Error(),
		}).Error("Failed to stream quote audio")
		return quote.ErrAudioFailed
	}

	return nil
}

func (s *quoteService) loadSnapshot(ctx context.Context, runID string) (quoteSnapshot, error) {
	var snapshot quoteSnapshot
	if err := s.redis.GetJSON(ctx, snapshotKey(runID), &snapshot); err != nil {
		return quoteSnapshot{}, quote.ErrRunNotFound
	}
	return snapshot, nil
}

func (s *quoteService) uploadAndPresign(key string, data []byte, contentType string) (string, error) {
	location, err := s.s3.UploadBytes(key, data, contentType)
	if err != nil {
		return "", err
	}
	return s.s3.PresignUrl(location)
}

func spokenQuote(snapshot quoteSnapshot) string {
	q := snapshot.Quote
	return fmt.Sprintf(
		"Your rental quote for %d days comes to %.2f %s, including %.2f in tax. Thank you for choosing us.",
		snapshot.Days, q.Total, q.Currency, q.Tax,
	)
}
