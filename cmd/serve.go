package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/manoskary/partitura/constants"
	"github.com/manoskary/partitura/match"
	"github.com/manoskary/partitura/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves a match line parsing API",
	Long:  `Serves a match line parsing API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// HandleParse classifies the posted lines and returns their kinds and
// canonical forms. Exported so the e2e tests can hit it directly.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "could not read request body", 400)
		return
	}

	var input model.ParseRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "could not unmarshal request body: "+err.Error(), 400)
		return
	}

	res := model.ParseResponse{NumLines: len(input.Lines), Lines: make([]model.ParsedLine, 0)}
	for i, raw := range input.Lines {
		pl := model.ParsedLine{LineNum: i + 1}
		line, err := match.ParseLine(strings.TrimSpace(raw))
		if err != nil {
			pl.Kind = "unmatched"
			pl.Error = err.Error()
			res.NumUnmatched++
		} else {
			pl.Kind = match.LineKind(line)
			pl.Canonical = line.Matchline()
		}
		res.Lines = append(res.Lines, pl)
	}
	json.NewEncoder(w).Encode(res)
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	handler := cors.Default().Handler(router)

	port := constants.GetServePort()
	fmt.Printf("Listening on :%v\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
