package email

import "fmt"

const welcomeSubject = "Welcome to the clinic"

func welcomeText(name, appURL string) string {
	return fmt.Sprintf(`Hello %s,

Your clinic account has been created. You can sign in with your identity
number and password at:

%s/login

---
This is an automated message, please do not reply.`, name, appURL)
}

func welcomeHTML(name, appURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; border-radius: 5px; padding: 30px; margin-bottom: 20px;">
        <h2 style="color: #2c3e50; margin-top: 0;">Hello %s</h2>
        <p>Your clinic account has been created. Sign in with your identity number and password.</p>
        <div style="text-align: center; margin: 30px 0;">
            <a href="%s/login" style="background-color: #007bff; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block; font-weight: bold;">Sign in</a>
        </div>
    </div>
    <p style="color: #999; font-size: 12px; text-align: center;">This is an automated message, please do not reply.</p>
</body>
</html>`, name, appURL)
}
