package search

import (
	"github.com/gruntwork-io/notecards/internal/document"
	"github.com/gruntwork-io/notecards/internal/errors"
	"github.com/gruntwork-io/notecards/options"
)

const (
	// FormatText prints one text block per card.
	FormatText = "text"
	// FormatJSON prints the cards as a JSON object.
	FormatJSON = "json"
)

type Options struct {
	*options.Options

	// Format determines the format of the output.
	Format string

	// JSON is an alias for --format=json.
	JSON bool

	// Limit is the number of cards printed; zero means one page.
	Limit int

	// Preview includes the preview text of every card.
	Preview bool

	PreviewLimit int
}

func NewOptions(opts *options.Options) *Options {
	return &Options{
		Options:      opts,
		Format:       FormatText,
		PreviewLimit: document.DefaultPreviewLimit,
	}
}

func (o *Options) Validate() error {
	errs := &errors.MultiError{}

	switch o.Format {
	case FormatText, FormatJSON:
	default:
		errs = errs.Append(errors.New("invalid format: " + o.Format))
	}

	if o.Limit < 0 {
		errs = errs.Append(errors.Errorf("limit must not be negative, got %d", o.Limit))
	}

	if o.PreviewLimit <= 0 {
		errs = errs.Append(errors.Errorf("preview limit must be positive, got %d", o.PreviewLimit))
	}

	return errs.ErrorOrNil()
}
