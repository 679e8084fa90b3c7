// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import "fmt"

const (
	v3Context      = "http://iiif.io/api/presentation/3/context.json"
	v3ServiceType  = "ImageService3"
	v3ImageProfile = "level2"
)

// V3 is a Presentation API 3.0 manifest.
type V3 struct {
	Context string              `json:"@context"`
	ID      string              `json:"id"`
	Type    string              `json:"type"`
	Label   map[string][]string `json:"label"`
	Items   []V3Canvas          `json:"items"`
}

type V3Canvas struct {
	ID     string             `json:"id"`
	Type   string             `json:"type"`
	Height int                `json:"height"`
	Width  int                `json:"width"`
	Items  []V3AnnotationPage `json:"items"`
}

type V3AnnotationPage struct {
	ID    string         `json:"id"`
	Type  string         `json:"type"`
	Items []V3Annotation `json:"items"`
}

type V3Annotation struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Motivation string `json:"motivation"`
	Body       V3Body `json:"body"`
	Target     string `json:"target"`
}

type V3Body struct {
	ID      string      `json:"id"`
	Type    string      `json:"type"`
	Format  string      `json:"format"`
	Service []V3Service `json:"service"`
}

type V3Service struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Profile string `json:"profile"`
}

func (m *V3) Version() Version { return V3Version }

func (m *V3) CanvasIDs() []string {
	ids := make([]string, len(m.Items))
	for i, c := range m.Items {
		ids[i] = c.ID
	}
	return ids
}

type v3Shape struct{}

func (v3Shape) Version() Version { return V3Version }

func (v3Shape) Render(h Header, canvases []Canvas) Document {
	items := make([]V3Canvas, 0, len(canvases))
	for _, c := range canvases {
		items = append(items, V3Canvas{
			ID:     c.ID,
			Type:   "Canvas",
			Height: c.Height,
			Width:  c.Width,
			Items: []V3AnnotationPage{{
				ID:   fmt.Sprintf("%s/page/p%d/1", h.Base, c.Index),
				Type: "AnnotationPage",
				Items: []V3Annotation{{
					ID:         fmt.Sprintf("%s/annotation/p%d-image", h.Base, c.Index),
					Type:       "Annotation",
					Motivation: "painting",
					Body: V3Body{
						ID:     c.ImageID,
						Type:   "Image",
						Format: c.Format,
						Service: []V3Service{{
							ID:      c.ServiceID,
							Type:    v3ServiceType,
							Profile: v3ImageProfile,
						}},
					},
					Target: c.ID,
				}},
			}},
		})
	}

	return &V3{
		Context: v3Context,
		ID:      h.ID(),
		Type:    "Manifest",
		Label:   map[string][]string{h.Language: {h.Title}},
		Items:   items,
	}
}
