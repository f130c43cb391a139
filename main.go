package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zulalbeyza/ai-powered-video-translation-app/config"
	"github.com/zulalbeyza/ai-powered-video-translation-app/logger"
	"github.com/zulalbeyza/ai-powered-video-translation-app/media"
	"github.com/zulalbeyza/ai-powered-video-translation-app/pipeline"
	"github.com/zulalbeyza/ai-powered-video-translation-app/stt"
	"github.com/zulalbeyza/ai-powered-video-translation-app/translate"
)

func main() {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	langsFlag := flag.String("langs", "tr,en", "comma-separated target languages (codes or names)")
	outDir := flag.String("out", ".", "directory for translated text files")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: ai-powered-video-translation-app [-langs tr,en] [-out dir] <video_file>")
	}
	videoFile := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	langs, err := parseLanguages(*langsFlag)
	if err != nil {
		log.Fatalf("Invalid language selection: %v", err)
	}

	data, err := os.ReadFile(videoFile)
	if err != nil {
		log.Fatalf("Failed to read video file: %v", err)
	}

	extractor := &media.Extractor{
		Binary:      cfg.FFmpegPath,
		ProbeBinary: cfg.FFprobePath,
		Codec:       cfg.AudioCodec,
		Timeout:     cfg.TranscodeTimeout,
	}
	transcriber := stt.NewWhisper(cfg.OpenAIAPIKey, cfg.WhisperModel)
	fanOut := &translate.FanOut{
		Translator:     translate.NewOpenAI(cfg.OpenAIAPIKey, cfg.GPTModel),
		Workers:        cfg.TranslateWorkers,
		PerCallTimeout: cfg.TranslateTimeout,
	}

	p := pipeline.New(extractor, transcriber, fanOut, zl, pipeline.Config{
		TempDir:           cfg.TempDir,
		TranscribeTimeout: cfg.TranscribeTimeout,
	})
	p.Progress = func(stage pipeline.Stage, fraction float64) {
		fmt.Printf("[%3.0f%%] %s\n", fraction*100, stage)
	}

	// Cancel the run on interrupt; the pipeline releases its work area
	// on every exit path.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, runErr := p.Run(ctx, pipeline.MediaInput{Data: data, Filename: filepath.Base(videoFile)}, langs)
	fmt.Printf("Total processing time: %.2f seconds\n", run.Elapsed.Seconds())
	if runErr != nil {
		var sErr *pipeline.StageError
		if errors.As(runErr, &sErr) {
			log.Fatal(sErr.UserMessage())
		}
		log.Fatalf("Processing failed: %v", runErr)
	}

	fmt.Println("Transcript:", run.Transcript.Text)
	if run.Transcript.Confidence != nil {
		fmt.Printf("Recognition confidence: %.2f%%\n", *run.Transcript.Confidence*100)
	} else {
		fmt.Println("Recognition confidence: not available")
	}

	base := pipeline.SanitizeFilename(filepath.Base(videoFile))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	for _, r := range run.Translations {
		if r.Err != nil {
			fmt.Printf("%s: translation failed\n", r.Language.Name)
			continue
		}
		fmt.Printf("--- %s ---\n%s\n", r.Language.Name, r.Text)

		outFile := filepath.Join(*outDir, fmt.Sprintf("%s_%s.txt", stem, r.Language.Code))
		if err := os.WriteFile(outFile, []byte(r.Text), 0o644); err != nil {
			zl.Warn("failed to write translation file", zap.String("path", outFile), zap.Error(err))
		}
	}

	if run.Status == pipeline.StatusCompletedWithErrors {
		fmt.Println("Finished with errors: some languages could not be translated.")
		os.Exit(1)
	}
	fmt.Println("All steps completed successfully.")
}

func parseLanguages(s string) ([]translate.Language, error) {
	var langs []translate.Language
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := translate.Parse(part)
		if err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	if len(langs) == 0 {
		return nil, fmt.Errorf("no target languages selected")
	}
	return langs, nil
}
