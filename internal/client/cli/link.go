package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/solarsync/internal/validation"
)

func (c *Cli) runLink(ctx context.Context, args []string, link bool) error {
	command := "unlink"
	if link {
		command = "link"
	}
	if len(args) != 2 {
		return fmt.Errorf("usage: solarsync %s <clientID> <installationID>", command)
	}

	clientID, installationID := args[0], args[1]
	for _, id := range args {
		if err := validation.ValidateRecordID(id); err != nil {
			return err
		}
	}

	stack, err := c.open(ctx)
	if err != nil {
		return err
	}

	if link {
		err = stack.CRM.LinkInstallation(ctx, clientID, installationID)
	} else {
		err = stack.CRM.UnlinkInstallation(ctx, clientID, installationID)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", command, err)
	}

	if link {
		c.io.Printf("✓ Installation %s linked to client %s\n", installationID, clientID)
	} else {
		c.io.Printf("✓ Installation %s unlinked from client %s\n", installationID, clientID)
	}
	return nil
}
