package adgen

import (
	"github.com/adgenhq/adgen/application/handler/generation"
)

// registerHandlers wires task handlers into the registry.
func (c *Client) registerHandlers() {
	orchestrator := generation.NewOrchestrator(
		c.db,
		c.blobs,
		c.generators.Text,
		c.generators.Image,
		c.logger,
	)
	generation.NewGenerateHandler(orchestrator).Register(c.registry)
}
