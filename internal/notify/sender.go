package notify

import "os/exec"

// Sender is the platform capability behind the Dispatcher: displaying a
// desktop notification and playing an audio resource. Both methods report
// failure through their error return; deciding which failures matter is
// the Dispatcher's job, not the sender's.
type Sender interface {
	// Notify displays a desktop notification with the given title and body.
	Notify(title, body string) error

	// PlaySound plays the audio resource at path.
	PlaySound(path string) error
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
