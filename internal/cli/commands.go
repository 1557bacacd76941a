package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"animals-safety/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

var (
	ErrNotFound = errors.New("animal not found")
	ErrRejected = errors.New("animal rejected")
)

type animalDTO struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Breed  string  `json:"breed"`
	Age    int     `json:"age"`
	Weight float32 `json:"weight"`
	Height float32 `json:"height"`
}

type breedDTO struct {
	Breed string `json:"breed"`
	Label string `json:"label"`
	Cover string `json:"cover"`
}

type createRequest struct {
	Name   string `json:"name"`
	Breed  string `json:"breed,omitempty"`
	Age    string `json:"age"`
	Weight string `json:"weight"`
	Height string `json:"height"`
}

type rejection struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func listCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List animals in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.client()
			if err != nil {
				return err
			}
			var items []animalDTO
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/animals", nil, &items); err != nil {
				return err
			}
			if e.v.GetBool("json") {
				return e.printJSON(items)
			}
			renderAnimals(e.out, items)
			return nil
		},
	}
}

func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.client()
			if err != nil {
				return err
			}
			var a animalDTO
			err = c.DoJSON(cmd.Context(), http.MethodGet, "/animals/"+url.PathEscape(args[0]), nil, &a)
			if httpclient.StatusOf(err) == http.StatusNotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, args[0])
			}
			if err != nil {
				return err
			}
			if e.v.GetBool("json") {
				return e.printJSON(a)
			}
			renderAnimal(e.out, a)
			return nil
		},
	}
}

func createCmd(e *env) *cobra.Command {
	var req createRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an animal from raw form values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.client()
			if err != nil {
				return err
			}
			var a animalDTO
			err = c.DoJSON(cmd.Context(), http.MethodPost, "/animals", req, &a)
			if err != nil {
				var he *httpclient.HTTPError
				if errors.As(err, &he) && he.StatusCode == http.StatusUnprocessableEntity {
					var r rejection
					if json.Unmarshal([]byte(he.Body), &r) == nil && r.Message != "" {
						return fmt.Errorf("%w: %s", ErrRejected, r.Message)
					}
				}
				return err
			}
			if e.v.GetBool("json") {
				return e.printJSON(a)
			}
			fmt.Fprintln(e.out, a.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Name, "name", "", "animal name")
	cmd.Flags().StringVar(&req.Breed, "breed", "", "breed (default: first breed)")
	cmd.Flags().StringVar(&req.Age, "age", "", "age in years")
	cmd.Flags().StringVar(&req.Weight, "weight", "", "weight in kg")
	cmd.Flags().StringVar(&req.Height, "height", "", "height in cm")
	return cmd
}

func breedsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "List available breeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := e.client()
			if err != nil {
				return err
			}
			var items []breedDTO
			if err := c.DoJSON(cmd.Context(), http.MethodGet, "/breeds", nil, &items); err != nil {
				return err
			}
			if e.v.GetBool("json") {
				return e.printJSON(items)
			}
			renderBreeds(e.out, items)
			return nil
		},
	}
}

func (e *env) printJSON(v any) error {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
