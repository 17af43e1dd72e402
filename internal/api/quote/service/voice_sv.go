package quoteService

import (
	"RentalCopilot/internal/api/quote"
	contextPkg "RentalCopilot/pkg/context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *quoteService) RequestQuoteFromAudio(ctx context.Context, tier string, file *multipart.FileHeader) (quote.QuoteResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if s.transcriber == nil {
		return quote.QuoteResponse{}, quote.ErrAudioFailed
	}

	if err := s.utils.ValidateAudioFile(file); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Audio file rejected")
		return quote.QuoteResponse{}, err
	}

	path, err := s.saveUpload(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to store uploaded audio")
		return quote.QuoteResponse{}, quote.ErrAudioFailed
	}
	defer os.Remove(path)

	message, err := s.transcriber.TranscribeAudio(ctx, path)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to transcribe audio")
		return quote.QuoteResponse{}, quote.ErrAudioFailed
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return quote.QuoteResponse{}, quote.ErrNoItemsRecognized
	}

	return s.RequestQuote(ctx, quote.QuoteRequest{
		Message: message,
		Tier:    tier,
	})
}

func (s *quoteService) saveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", fmt.Sprintf("voice-quote-*%s", filepath.Ext(file.Filename)))
	if err != nil {
		return "", err
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, src); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}

	return tmp.Name(), nil
}
