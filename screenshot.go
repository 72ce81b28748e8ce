package reassemble

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// ScreenshotQueue collects labeled capture requests during Update and writes
// them as PNG files at the end of the next Draw. Scripted sessions use it to
// record the puzzle at chosen steps.
type ScreenshotQueue struct {
	// Dir is the output directory, created on first capture.
	Dir    string
	labels []string
	log    *zap.Logger
}

// NewScreenshotQueue creates a queue writing into dir.
func NewScreenshotQueue(dir string, log *zap.Logger) *ScreenshotQueue {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScreenshotQueue{Dir: dir, log: log}
}

// Queue requests a capture of the next rendered frame.
func (q *ScreenshotQueue) Queue(label string) {
	q.labels = append(q.labels, label)
}

// Pending returns the number of queued captures.
func (q *ScreenshotQueue) Pending() int {
	return len(q.labels)
}

// Flush captures screen for every queued label. Call it at the end of Draw.
func (q *ScreenshotQueue) Flush(screen *ebiten.Image) {
	if len(q.labels) == 0 {
		return
	}
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	q.save(unpremultiply(pixels, w, h), time.Now())
}

// save writes img once per queued label and clears the queue.
func (q *ScreenshotQueue) save(img *image.NRGBA, now time.Time) []string {
	defer func() { q.labels = q.labels[:0] }()

	if err := os.MkdirAll(q.Dir, 0o755); err != nil {
		q.log.Warn("screenshot dir", zap.String("dir", q.Dir), zap.Error(err))
		return nil
	}
	stamp := now.Format("20060102_150405")
	var written []string
	for _, label := range q.labels {
		path := filepath.Join(q.Dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			q.log.Warn("screenshot", zap.String("label", label), zap.Error(err))
			continue
		}
		q.log.Info("screenshot saved", zap.String("path", path))
		written = append(written, path)
	}
	return written
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps letters, digits, '-' and '.', replaces everything else
// with '_' and falls back to "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
