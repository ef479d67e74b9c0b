package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

// Request helper. Identity travels in headers, no auth involved.
func sendRequest(method, url, actingUser, actingRole string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if actingUser != "" {
		req.Header.Set("X-Acting-User", actingUser)
		req.Header.Set("X-Acting-Role", actingRole)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func decodeData(body []byte) map[string]interface{} {
	var parsed map[string]interface{}
	json.Unmarshal(body, &parsed)
	if data, ok := parsed["data"].(map[string]interface{}); ok {
		return data
	}
	return nil
}

func main() {
	color.Cyan("Starting Recruiting Pipeline API Smoke Test\n")

	recruiter := "Taylor Reed"

	// 1. Create a candidate
	color.Yellow("\n[RECRUITER] 1. Create Candidate")
	candReq := map[string]interface{}{
		"name":   "Smoke Test Candidate",
		"email":  "smoke.candidate@example.com",
		"skills": "Go, PostgreSQL",
		"source": "Referral",
	}
	resp, body, err := sendRequest("POST", "/candidate/v1", recruiter, "Recruiter", candReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	candData := decodeData(body)
	prettyPrint(candData)

	var candidateID float64
	if candData != nil {
		candidateID, _ = candData["id"].(float64)
	}
	if candidateID == 0 {
		color.Red("No candidate id returned, aborting")
		os.Exit(1)
	}

	// 2. Create a requisition with an approval workflow
	color.Yellow("\n[RECRUITER] 2. Create Requisition")
	reqReq := map[string]interface{}{
		"title":           "Smoke Test Engineer",
		"department":      "Engineering",
		"required_skills": []string{"Go", "PostgreSQL"},
		"hiring_manager":  "Dana Whitfield",
		"approval_workflow": []map[string]interface{}{
			{"stage": "Department Head", "approver": "Dana Whitfield"},
		},
	}
	resp, body, err = sendRequest("POST", "/requisition/v1", recruiter, "Recruiter", reqReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	reqData := decodeData(body)
	prettyPrint(reqData)

	var jobID float64
	if reqData != nil {
		jobID, _ = reqData["id"].(float64)
	}
	if jobID == 0 {
		color.Red("No requisition id returned, aborting")
		os.Exit(1)
	}

	// 3. Approve the requisition as the chain's approver
	color.Yellow("\n[APPROVER] 3. Record Approval")
	approvalReq := map[string]interface{}{
		"step_index": 0,
		"outcome":    "Approved",
		"notes":      "Headcount confirmed",
	}
	resp, body, err = sendRequest("POST", fmt.Sprintf("/requisition/v1/%d/approvals", int(jobID)), "Dana Whitfield", "Recruiter", approvalReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decodeData(body))

	// 4. Walk the candidate through the pipeline to Offer
	stages := [][2]string{
		{"Applied", "PhoneScreen"},
		{"PhoneScreen", "TechnicalInterview"},
		{"TechnicalInterview", "FinalInterview"},
		{"FinalInterview", "Offer"},
	}
	for i, pair := range stages {
		color.Yellow("\n[RECRUITER] 4.%d Move %s -> %s", i+1, pair[0], pair[1])
		moveReq := map[string]interface{}{
			"job_id":       int(jobID),
			"candidate_id": int(candidateID),
			"source_stage": pair[0],
			"target_stage": pair[1],
		}
		resp, body, err = sendRequest("POST", "/pipeline/v1/move", recruiter, "Recruiter", moveReq)
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		color.Green("Status: %s", resp.Status)
	}

	// 5. Verify the hiring manager sees the board
	color.Yellow("\n[HIRING MANAGER] 5. Read Board")
	resp, body, err = sendRequest("GET", fmt.Sprintf("/pipeline/v1/%d/board", int(jobID)), "Dana Whitfield", "HiringManager", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(decodeData(body))

	// 6. Hiring manager must NOT be able to move candidates
	color.Yellow("\n[HIRING MANAGER] 6. Attempt Move (expect 403)")
	moveReq := map[string]interface{}{
		"job_id":       int(jobID),
		"candidate_id": int(candidateID),
		"source_stage": "Offer",
		"target_stage": "Hired",
	}
	resp, _, err = sendRequest("POST", "/pipeline/v1/move", "Dana Whitfield", "HiringManager", moveReq)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusForbidden {
		color.Green("Correctly rejected: %s", resp.Status)
	} else {
		color.Red("Expected 403, got: %s", resp.Status)
	}

	// 7. List ready offers (the Offer-stage arrival should have drafted one)
	color.Yellow("\n[RECRUITER] 7. List Offers")
	resp, body, err = sendRequest("GET", "/offer/v1", recruiter, "Recruiter", nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	var offersResp map[string]interface{}
	json.Unmarshal(body, &offersResp)
	prettyPrint(offersResp["data"])

	color.Cyan("\nSmoke test finished.")
}
