package quoteService

import (
	"RentalCopilot/internal/api/quote"
	quoteRepository "RentalCopilot/internal/api/quote/repository"
	"RentalCopilot/internal/entity"
	"RentalCopilot/pkg/audio"
	"RentalCopilot/pkg/gemini"
	"RentalCopilot/pkg/nlp"
	"RentalCopilot/pkg/pdf"
	redisPkg "RentalCopilot/pkg/redis"
	"RentalCopilot/pkg/runstream"
	"RentalCopilot/pkg/s3"
	"RentalCopilot/pkg/utils"
	"RentalCopilot/pkg/whatsapp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"io"
	"mime/multipart"
)

type IQuoteService interface {
	RequestQuote(ctx context.Context, req quote.QuoteRequest) (quote.QuoteResponse, error)
	RequestQuoteFromAudio(ctx context.Context, tier string, file *multipart.FileHeader) (quote.QuoteResponse, error)
	SubmitFeedback(ctx context.Context, req quote.FeedbackRequest) (quote.FeedbackResponse, error)
	QuoteDocument(ctx context.Context, runID string) (quote.DocumentResponse, error)
	QuoteAudio(ctx context.Context, runID string) (quote.DocumentResponse, error)
	StreamQuoteAudio(ctx context.Context, runID string, out io.Writer) error
}

type quoteService struct {
	log             *logrus.Logger
	quoteRepository quoteRepository.Repository
	parser          *nlp.Parser
	redis           redisPkg.IRedis
	gemini          gemini.IGemini
	s3              s3.ItfS3
	tts             *audio.TTSService
	streamTTS       *audio.StreamingTTSService
	transcriber     *audio.TranscriptionService
	pdf             pdf.IRenderer
	whatsapp        whatsapp.ISender
	stream          *runstream.Broker
	utils           utils.IUtils
	locations       *nlp.LocationResolver
}

func NewQuoteService(
	log *logrus.Logger,
	qr quoteRepository.Repository,
	parser *nlp.Parser,
	redis redisPkg.IRedis,
	gemini gemini.IGemini,
	s3 s3.ItfS3,
	tts *audio.TTSService,
	streamTTS *audio.StreamingTTSService,
	transcriber *audio.TranscriptionService,
	pdf pdf.IRenderer,
	whatsapp whatsapp.ISender,
	stream *runstream.Broker,
	utils utils.IUtils,
) IQuoteService {
	return &quoteService{
		log:             log,
		quoteRepository: qr,
		parser:          parser,
		redis:           redis,
		gemini:          gemini,
		s3:              s3,
		tts:             tts,
		streamTTS:       streamTTS,
		transcriber:     transcriber,
		pdf:             pdf,
		whatsapp:        whatsapp,
		stream:          stream,
		utils:           utils,
		locations:       nlp.NewLocationResolver(),
	}
}

// quoteSnapshot is what gets cached and re-used by the document and
// audio endpoints so they do not re-run the pipeline.
type quoteSnapshot struct {
	RunID    string               `json:"run_id"`
	Quote    entity.Quote         `json:"quote"`
	Days     int                  `json:"days"`
	Location nlp.ResolvedLocation `json:"location"`
	Summary  string               `json:"summary,omitempty"`
	Names    map[string]string    `json:"names,omitempty"`
}

func snapshotKey(runID string) string {
	return "quote:snapshot:" + runID
}
