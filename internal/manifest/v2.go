// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

const (
	v2Context        = "http://iiif.io/api/presentation/2/context.json"
	v2ImageContext   = "http://iiif.io/api/image/2/context.json"
	v2ImageProfile   = "http://iiif.io/api/image/2/level2.json"
	v2ServiceType    = "ImageService2"
	v2SequenceType   = "sc:Sequence"
	v2AnnotationType = "oa:Annotation"
	v2Motivation     = "sc:painting"
	v2ImageType      = "dctypes:Image"
)

// V2 is a Presentation API 2.x manifest with a single sequence.
type V2 struct {
	Context   string       `json:"@context"`
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Label     V2Label      `json:"label"`
	Sequences []V2Sequence `json:"sequences"`
}

type V2Label struct {
	Value    string `json:"@value"`
	Language string `json:"@language"`
}

type V2Sequence struct {
	Type     string     `json:"@type"`
	Canvases []V2Canvas `json:"canvases"`
}

type V2Canvas struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"`
	Height int            `json:"height"`
	Width  int            `json:"width"`
	Images []V2Annotation `json:"images"`
}

type V2Annotation struct {
	Type       string     `json:"@type"`
	Motivation string     `json:"motivation"`
	Resource   V2Resource `json:"resource"`
	On         string     `json:"on"`
}

type V2Resource struct {
	ID      string    `json:"@id"`
	Type    string    `json:"@type"`
	Format  string    `json:"format"`
	Service V2Service `json:"service"`
}

type V2Service struct {
	Context string `json:"@context"`
	ID      string `json:"@id"`
	Type    string `json:"@type"`
	Profile string `json:"profile"`
}

func (m *V2) Version() Version { return V2Version }

// CanvasIDs returns the canvas ids of the first sequence in order.
func (m *V2) CanvasIDs() []string {
	if len(m.Sequences) == 0 {
		return nil
	}
	ids := make([]string, len(m.Sequences[0].Canvases))
	for i, c := range m.Sequences[0].Canvases {
		ids[i] = c.ID
	}
	return ids
}

type v2Shape struct{}

func (v2Shape) Version() Version { return V2Version }

func (v2Shape) Render(h Header, canvases []Canvas) Document {
	seq := V2Sequence{
		Type:     v2SequenceType,
		Canvases: make([]V2Canvas, 0, len(canvases)),
	}
	for _, c := range canvases {
		seq.Canvases = append(seq.Canvases, V2Canvas{
			ID:     c.ID,
			Type:   "Canvas",
			Height: c.Height,
			Width:  c.Width,
			Images: []V2Annotation{{
				Type:       v2AnnotationType,
				Motivation: v2Motivation,
				Resource: V2Resource{
					ID:     c.ImageID,
					Type:   v2ImageType,
					Format: c.Format,
					Service: V2Service{
						Context: v2ImageContext,
						ID:      c.ServiceID,
						Type:    v2ServiceType,
						Profile: v2ImageProfile,
					},
				},
				On: c.ID,
			}},
		})
	}

	return &V2{
		Context:   v2Context,
		ID:        h.ID(),
		Type:      "Manifest",
		Label:     V2Label{Value: h.Title, Language: h.Language},
		Sequences: []V2Sequence{seq},
	}
}
