package roundup_test

const issuePage = `<!DOCTYPE html>
<html><body>
<div class="issue">
  <div class="container">
    <div class="right">
      <h1><span>Immortal X-Men #8</span></h1>
      <div class="left">
        <span><strong>Writer:</strong> Jane Doe, John Roe</span>
        <span><strong>Artist:</strong> Lucas Werneck</span>
        <span><strong>Publisher:</strong> Marvel</span>
        <span><strong>Release Date:</strong> Oct 19, 2022</span>
        <span><strong>Cover Price:</strong> $3.99</span>
      </div>
      <div class="right">
        <div class="critic">Critic Rating <span>8.5</span></div>
        <div class="user">User Rating <span>9</span></div>
      </div>
    </div>
  </div>
</div>
<div class="divider">
  <div class="container">
    <ul class="tabs">
      <li><a href="#critic">Critic Reviews (12)</a></li>
      <li><a href="#user">User Reviews (30)</a></li>
    </ul>
  </div>
</div>
<div class="series-buttons">
  <a class="series" href="/comic-books/reviews/marvel-comics/immortal-x-men-(2022)">All Issues</a>
</div>
</body></html>`

const sparseIssuePage = `<html><body>
<div class="issue">
  <div class="container">
    <div class="right">
      <h1><span>Lonely #1</span></h1>
      <div class="left">
        <span><strong>Writer:</strong> Jane Doe</span>
        <span><strong>Publisher:</strong> Vault</span>
      </div>
      <div class="right">
        <div>Critic Rating <span>N/A</span></div>
      </div>
    </div>
  </div>
</div>
<div class="divider">
  <div class="container">
    <ul class="tabs">
      <li><a href="#critic">Critic Reviews</a></li>
    </ul>
  </div>
</div>
</body></html>`

const seriesListingPage = `<html><body>
<div class="section">
  <table>
    <tr><td class="series"><a href="/comic-books/reviews/vault-comics/a">Alpha</a></td><td class="issue"><a href="/comic-books/reviews/vault-comics/a/1">#1</a></td></tr>
    <tr><td class="series"><a href="/comic-books/reviews/vault-comics/b">Beta <em>(2021)</em></a></td><td class="issue"><a href="/comic-books/reviews/vault-comics/b/1">#1</a></td></tr>
    <tr><td class="series"><a href="/comic-books/reviews/vault-comics/c">Gamma</a></td><td class="issue"><a href="/comic-books/reviews/vault-comics/c/4">#4</a></td></tr>
  </table>
</div>
<div class="sidebar"><table><tr><td class="series"><a href="/elsewhere">Not listed</a></td></tr></table></div>
</body></html>`

const missingHrefPage = `<html><body>
<div class="section">
  <table>
    <tr><td class="series"><a href="/a">Alpha</a></td></tr>
    <tr><td class="series"><a name="broken">Beta</a></td></tr>
  </table>
</div>
</body></html>`
